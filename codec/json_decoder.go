package codec

import (
	"bytes"

	"github.com/supp-info/wikiglue/jsonvalue"
)

type JsonDecoder struct{}

func (jd *JsonDecoder) Decode(value []byte) (jsonvalue.Value, error) {
	return jsonvalue.Parse(bytes.TrimSpace(value))
}
