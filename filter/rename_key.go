package filter

import (
	"sort"

	"github.com/supp-info/wikiglue/jsonvalue"
	"github.com/supp-info/wikiglue/key_renamer"
	"github.com/supp-info/wikiglue/topology"
	"k8s.io/klog/v2"
)

type RenameKeyConfig struct {
	Fields map[string]string `mapstructure:"fields"`
}

// RenameKeyFilter renames top-level keys of object events. Renames are
// applied one after another in the order of the old key names.
type RenameKeyFilter struct {
	config   map[any]any
	renamers []*key_renamer.KeyRenamer
}

func init() {
	Register("RenameKey", newRenameKeyFilter)
}

func newRenameKeyFilter(config map[any]any) topology.Filter {
	var c RenameKeyConfig
	SafeDecodeConfig("RenameKey", config, &c)
	if err := ValidateRequiredFields("RenameKey", map[string]any{"fields": c.Fields}); err != nil {
		klog.Fatal(err)
	}

	oldKeys := make([]string, 0, len(c.Fields))
	for k := range c.Fields {
		oldKeys = append(oldKeys, k)
	}
	sort.Strings(oldKeys)

	plugin := &RenameKeyFilter{
		config:   config,
		renamers: make([]*key_renamer.KeyRenamer, 0, len(oldKeys)),
	}
	for _, k := range oldKeys {
		plugin.renamers = append(plugin.renamers, key_renamer.NewKeyRenamer(k, c.Fields[k]))
	}
	return plugin
}

// Filter reports false for events that are not objects.
func (plugin *RenameKeyFilter) Filter(event jsonvalue.Value) (jsonvalue.Value, bool) {
	if _, ok := event.(*jsonvalue.Object); !ok {
		return event, false
	}
	for _, r := range plugin.renamers {
		event = r.Rename(event)
	}
	return event, true
}
