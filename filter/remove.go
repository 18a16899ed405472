package filter

import (
	"github.com/supp-info/wikiglue/field_deleter"
	"github.com/supp-info/wikiglue/jsonvalue"
	"github.com/supp-info/wikiglue/topology"
	"k8s.io/klog/v2"
)

// RemoveConfig defines the configuration structure for Remove filter
type RemoveConfig struct {
	Fields []string `mapstructure:"fields"`
}

// RemoveFilter deletes several field references, e.g. "[meta][secret]".
type RemoveFilter struct {
	config         map[any]any
	fieldsDeleters []field_deleter.FieldDeleter
}

func init() {
	Register("Remove", newRemoveFilter)
}

func newRemoveFilter(config map[any]any) topology.Filter {
	var removeConfig RemoveConfig
	SafeDecodeConfig("Remove", config, &removeConfig)
	if err := ValidateRequiredFields("Remove", map[string]any{"fields": removeConfig.Fields}); err != nil {
		klog.Fatal(err)
	}

	plugin := &RemoveFilter{
		config:         config,
		fieldsDeleters: make([]field_deleter.FieldDeleter, 0, len(removeConfig.Fields)),
	}
	for _, field := range removeConfig.Fields {
		plugin.fieldsDeleters = append(plugin.fieldsDeleters, field_deleter.NewFieldDeleter(field))
	}
	return plugin
}

func (plugin *RemoveFilter) Filter(event jsonvalue.Value) (jsonvalue.Value, bool) {
	for _, d := range plugin.fieldsDeleters {
		event = d.Delete(event)
	}
	return event, true
}
