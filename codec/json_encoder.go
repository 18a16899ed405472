package codec

import "github.com/supp-info/wikiglue/jsonvalue"

type JsonEncoder struct {
	Indent int
}

func (e *JsonEncoder) Encode(v jsonvalue.Value) ([]byte, error) {
	if e.Indent > 0 {
		return jsonvalue.MarshalIndent(v, e.Indent)
	}
	return jsonvalue.Marshal(v)
}
