package input

import (
	"github.com/mitchellh/mapstructure"
	"k8s.io/klog/v2"
)

// SafeDecodeConfig decodes input configuration using mapstructure
func SafeDecodeConfig(inputType string, config map[any]any, result any) {
	if err := mapstructure.WeakDecode(config, result); err != nil {
		klog.Fatalf("%s input configuration error: %v", inputType, err)
	}
}
