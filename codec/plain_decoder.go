package codec

import "github.com/supp-info/wikiglue/jsonvalue"

// PlainDecoder takes the whole message as a JSON string.
type PlainDecoder struct{}

func (d *PlainDecoder) Decode(value []byte) (jsonvalue.Value, error) {
	return jsonvalue.String(value), nil
}
