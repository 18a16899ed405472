package filter

import (
	"github.com/supp-info/wikiglue/field_deleter"
	"github.com/supp-info/wikiglue/jsonvalue"
	"github.com/supp-info/wikiglue/topology"
	"k8s.io/klog/v2"
)

// JsonDeleteConfig takes either a list of path tokens or one field reference.
type JsonDeleteConfig struct {
	Path  []string `mapstructure:"path"`
	Field string   `mapstructure:"field"`
}

// JsonDeleteFilter deletes the value at one path from every event.
type JsonDeleteFilter struct {
	config  map[any]any
	deleter *field_deleter.PathDeleter
}

func init() {
	Register("JsonDelete", newJsonDeleteFilter)
}

func newJsonDeleteFilter(config map[any]any) topology.Filter {
	var c JsonDeleteConfig
	SafeDecodeConfig("JsonDelete", config, &c)

	var path field_deleter.Path
	switch {
	case len(c.Path) > 0 && c.Field != "":
		klog.Fatal("JsonDelete filter: only one of 'path' and 'field' can be set")
	case c.Field != "":
		path = field_deleter.ParseFieldTemplate(c.Field)
	default:
		if err := ValidateRequiredFields("JsonDelete", map[string]any{"path": c.Path}); err != nil {
			klog.Fatalf("%v (or set 'field')", err)
		}
		path = field_deleter.NewPath(c.Path...)
	}

	return &JsonDeleteFilter{
		config:  config,
		deleter: field_deleter.NewPathDeleter(path),
	}
}

func (plugin *JsonDeleteFilter) Filter(event jsonvalue.Value) (jsonvalue.Value, bool) {
	rst := plugin.deleter.Delete(event)
	if klog.V(10).Enabled() {
		klog.Infof("JsonDelete %s: %v", plugin.deleter.Path(), !jsonvalue.Equal(rst, event))
	}
	return rst, true
}
