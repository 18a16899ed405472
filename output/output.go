package output

import (
	"github.com/mitchellh/mapstructure"
	"github.com/supp-info/wikiglue/topology"
	"k8s.io/klog/v2"
)

type BuildOutputFunc func(map[any]any) topology.Output

var registeredOutput map[string]BuildOutputFunc = make(map[string]BuildOutputFunc)

// Register is used by output plugins to register themselves
func Register(outputType string, bf BuildOutputFunc) {
	if _, ok := registeredOutput[outputType]; ok {
		klog.Errorf("%s has been registered, ignore %T", outputType, bf)
		return
	}
	registeredOutput[outputType] = bf
}

func BuildOutput(outputType string, config map[any]any) topology.Output {
	if v, ok := registeredOutput[outputType]; ok {
		return v(config)
	}
	klog.Fatalf("could not load %s output plugin", outputType)
	return nil
}

// SafeDecodeConfig decodes output configuration using mapstructure
func SafeDecodeConfig(outputType string, config map[any]any, result any) {
	if err := mapstructure.WeakDecode(config, result); err != nil {
		klog.Fatalf("%s output configuration error: %v", outputType, err)
	}
}
