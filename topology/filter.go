package topology

import (
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/supp-info/wikiglue/field_deleter"
	"github.com/supp-info/wikiglue/jsonvalue"
	"k8s.io/klog/v2"
)

// Filter transforms one event. A nil event means it has been dropped, false
// means the filter did not apply.
type Filter interface {
	Filter(jsonvalue.Value) (jsonvalue.Value, bool)
}

// FilterBoxConfig holds the options every filter accepts besides its own.
type FilterBoxConfig struct {
	FailTag      string   `mapstructure:"failTag"`
	RemoveFields []string `mapstructure:"remove_fields"`
}

// FilterBox wraps a Filter with the common options.
type FilterBox struct {
	Filter Filter

	config map[any]any

	failTag      string
	removeFields []field_deleter.FieldDeleter
	counter      prometheus.Counter
}

func NewFilterBox(config map[any]any) *FilterBox {
	var boxConfig FilterBoxConfig
	if err := mapstructure.WeakDecode(config, &boxConfig); err != nil {
		klog.Fatalf("filter common options error: %v", err)
	}

	f := FilterBox{
		config:  config,
		failTag: boxConfig.FailTag,
		counter: GetPromCounter(config),
	}

	for _, field := range boxConfig.RemoveFields {
		f.removeFields = append(f.removeFields, field_deleter.NewFieldDeleter(field))
	}
	return &f
}

func (f *FilterBox) PostProcess(event jsonvalue.Value, success bool) jsonvalue.Value {
	if success {
		for _, d := range f.removeFields {
			event = d.Delete(event)
		}
		return event
	}
	if f.failTag != "" {
		event = addTag(event, f.failTag)
	}
	return event
}

func addTag(event jsonvalue.Value, tag string) jsonvalue.Value {
	obj, ok := event.(*jsonvalue.Object)
	if !ok {
		return event
	}
	tags, ok := obj.Get("tags")
	if !ok {
		return obj.With("tags", jsonvalue.String(tag))
	}
	switch t := tags.(type) {
	case jsonvalue.String:
		return obj.With("tags", jsonvalue.Array{t, jsonvalue.String(tag)})
	case jsonvalue.Array:
		newTags := make(jsonvalue.Array, 0, len(t)+1)
		newTags = append(newTags, t...)
		return obj.With("tags", append(newTags, jsonvalue.String(tag)))
	}
	return event
}

// Process implements Processor. It returns nil if the event was dropped.
func (f *FilterBox) Process(event jsonvalue.Value) jsonvalue.Value {
	event, rst := f.Filter.Filter(event)
	if event == nil {
		return nil
	}
	if f.counter != nil {
		f.counter.Inc()
	}
	return f.PostProcess(event, rst)
}

type buildFilterFunc func(filterType string, config map[any]any) Filter

func BuildFilterBoxes(config map[string]any, buildFilter buildFilterFunc) []*FilterBox {
	filtersI, ok := config["filters"].([]any)
	if !ok {
		return nil
	}

	boxes := make([]*FilterBox, 0, len(filtersI))
	for _, filterI := range filtersI {
		// len(filterI) is 1
		for filterTypeI, filterConfigI := range filterI.(map[any]any) {
			filterType := filterTypeI.(string)
			klog.Infof("filter type: %s", filterType)
			filterConfig, _ := filterConfigI.(map[any]any)
			if filterConfig == nil {
				filterConfig = make(map[any]any)
			}
			klog.Infof("filter config: %v", filterConfig)

			box := NewFilterBox(filterConfig)
			box.Filter = buildFilter(filterType, filterConfig)
			boxes = append(boxes, box)
		}
	}
	return boxes
}
