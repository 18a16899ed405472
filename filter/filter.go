package filter

import (
	"github.com/supp-info/wikiglue/topology"
	"k8s.io/klog/v2"
)

type BuildFilterFunc func(map[any]any) topology.Filter

var registeredFilter map[string]BuildFilterFunc = make(map[string]BuildFilterFunc)

// Register is used by filter plugins to register themselves
func Register(filterType string, bf BuildFilterFunc) {
	if _, ok := registeredFilter[filterType]; ok {
		klog.Errorf("%s has been registered, ignore %T", filterType, bf)
		return
	}
	registeredFilter[filterType] = bf
}

func BuildFilter(filterType string, config map[any]any) topology.Filter {
	if v, ok := registeredFilter[filterType]; ok {
		return v(config)
	}
	klog.Fatalf("could not load %s filter plugin", filterType)
	return nil
}
