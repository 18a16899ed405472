package codec

import (
	"github.com/supp-info/wikiglue/jsonvalue"
	"k8s.io/klog/v2"
)

// Decoder turns one raw message into a document.
type Decoder interface {
	Decode([]byte) (jsonvalue.Value, error)
}

func NewDecoder(t string) Decoder {
	switch t {
	case "plain":
		return &PlainDecoder{}
	case "json", "":
		return &JsonDecoder{}
	}
	klog.Fatalf("unknown decoder codec: %s", t)
	return nil
}
