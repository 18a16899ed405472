package wiki

import (
	"github.com/supp-info/wikiglue/field_deleter"
	"github.com/supp-info/wikiglue/jsonvalue"
	"k8s.io/klog/v2"
)

// Operator is a filter operator: it maps the input titles to output titles
// given the operator's operands.
type Operator func(source []string, operands []string) []string

// Operators lists the filter operators provided by this package.
var Operators = map[string]Operator{
	"jsondelete": JSONDelete,
}

func LookupOperator(name string) (Operator, bool) {
	op, ok := Operators[name]
	return op, ok
}

// JSONDelete deletes the value at the path given by operands from every
// input that is a JSON document and outputs the compact JSON of the result.
// Inputs that do not parse, and documents that are null, false, 0 or "",
// produce no output.
func JSONDelete(source []string, operands []string) []string {
	path := field_deleter.NewPath(operands...)
	results := make([]string, 0, len(source))
	for _, title := range source {
		data, err := jsonvalue.ParseString(title)
		if err != nil {
			klog.V(5).Infof("jsondelete: skip input that is not json: %v", err)
			continue
		}
		if falsy(data) {
			continue
		}
		b, err := jsonvalue.Marshal(field_deleter.Delete(data, path))
		if err != nil {
			klog.Errorf("jsondelete: encode result: %v", err)
			continue
		}
		results = append(results, string(b))
	}
	return results
}

func falsy(v jsonvalue.Value) bool {
	switch x := v.(type) {
	case jsonvalue.Null:
		return true
	case jsonvalue.Bool:
		return !bool(x)
	case jsonvalue.String:
		return x == ""
	case jsonvalue.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	}
	return false
}
