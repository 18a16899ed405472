package input

import (
	"github.com/supp-info/wikiglue/topology"
	"k8s.io/klog/v2"
)

type BuildInputFunc func(map[any]any) topology.Input

var registeredInput map[string]BuildInputFunc = make(map[string]BuildInputFunc)

// Register is used by input plugins to register themselves
func Register(inputType string, bf BuildInputFunc) {
	if _, ok := registeredInput[inputType]; ok {
		klog.Errorf("%s has been registered, ignore %T", inputType, bf)
		return
	}
	registeredInput[inputType] = bf
}

// GetInput returns nil if inputType is unknown.
func GetInput(inputType string, config map[any]any) topology.Input {
	if v, ok := registeredInput[inputType]; ok {
		return v(config)
	}
	klog.Errorf("could not load %s input plugin", inputType)
	return nil
}
