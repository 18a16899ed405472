package codec

import (
	"strings"

	"github.com/spf13/cast"
	"github.com/supp-info/wikiglue/jsonvalue"
	"k8s.io/klog/v2"
)

type Encoder interface {
	Encode(jsonvalue.Value) ([]byte, error)
}

const defaultIndent = 4

// NewEncoder supports "json", "json:indent" and "json:indent:N".
func NewEncoder(t string) Encoder {
	switch t {
	case "json", "":
		return &JsonEncoder{}
	case "json:indent":
		return &JsonEncoder{Indent: defaultIndent}
	}

	if strings.HasPrefix(t, "json:indent:") {
		splited := strings.SplitN(t, ":", 3)
		indent, err := cast.ToIntE(splited[2])
		if err != nil || indent < 0 {
			klog.Fatalf("format of `%s` is incorrect", t)
		}
		return &JsonEncoder{Indent: indent}
	}

	klog.Fatalf("unknown encoder codec: %s", t)
	return nil
}
