package filter

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/mitchellh/mapstructure"
	"k8s.io/klog/v2"
)

// SafeDecodeConfig decodes a filter's yaml section into result. Scalars are
// converted weakly ("1" into an int, a single string into a list). A config
// that cannot be decoded stops the process.
func SafeDecodeConfig(filterType string, config map[any]any, result any) {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err == nil {
		err = decoder.Decode(config)
	}
	if err != nil {
		klog.Fatalf("%s filter: bad config %v: %v", filterType, config, err)
	}
}

// ValidateRequiredFields reports the first field, in name order, whose value
// is nil or empty. Strings, slices and maps count as empty at length 0.
func ValidateRequiredFields(filterType string, fields map[string]any) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if isEmpty(fields[name]) {
			return fmt.Errorf("%s filter: '%s' is required", filterType, name)
		}
	}
	return nil
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
