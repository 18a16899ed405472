package jsonvalue

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrTrailingData = errors.New("trailing data after JSON value")

// Parse decodes one JSON document. Object member order follows the text.
func Parse(data []byte) (Value, error) {
	iter := jsoniter.ParseBytes(json, data)
	v := readValue(iter)
	if v == nil || (iter.Error != nil && iter.Error != io.EOF) {
		return nil, fmt.Errorf("parse json: %w", iter.Error)
	}
	// only whitespace may follow; reaching the end of input sets io.EOF
	iter.WhatIsNext()
	if iter.Error != io.EOF {
		return nil, ErrTrailingData
	}
	return v, nil
}

func ParseString(s string) (Value, error) {
	return Parse([]byte(s))
}

// MustParse is Parse that panics on error. Meant for literals.
func MustParse(s string) Value {
	v, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func readValue(iter *jsoniter.Iterator) Value {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return Null{}
	case jsoniter.BoolValue:
		return Bool(iter.ReadBool())
	case jsoniter.NumberValue:
		n := string(iter.ReadNumber())
		if !validNumber(n) {
			iter.ReportError("readValue", "invalid number "+n)
			return nil
		}
		return Number(n)
	case jsoniter.StringValue:
		return String(iter.ReadString())
	case jsoniter.ArrayValue:
		arr := Array{}
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			v := readValue(iter)
			if v == nil {
				return false
			}
			arr = append(arr, v)
			return true
		})
		return arr
	case jsoniter.ObjectValue:
		b := NewObjectBuilder(0)
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
			v := readValue(iter)
			if v == nil {
				return false
			}
			b.Set(field, v)
			return true
		})
		return b.Build()
	}
	iter.ReportError("readValue", "unexpected token")
	return nil
}

// Marshal encodes v as compact JSON. Numbers are written as their literal
// text, not re-rendered.
func Marshal(v Value) ([]byte, error) {
	return encode(json, v)
}

// MarshalIndent encodes v with step spaces per nesting level, the layout of
// JSON.stringify(v, null, step).
func MarshalIndent(v Value, step int) ([]byte, error) {
	if step <= 0 {
		return Marshal(v)
	}
	api := jsoniter.Config{
		IndentionStep: step,
	}.Froze()
	return encode(api, v)
}

func encode(api jsoniter.API, v Value) ([]byte, error) {
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	if err := writeValue(stream, v); err != nil {
		return nil, err
	}
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func writeValue(stream *jsoniter.Stream, v Value) error {
	switch x := v.(type) {
	case nil, Null:
		stream.WriteNil()
	case Bool:
		stream.WriteBool(bool(x))
	case Number:
		if x == "" {
			return errors.New("encode json: empty number literal")
		}
		stream.WriteRaw(string(x))
	case String:
		stream.WriteString(string(x))
	case Array:
		if len(x) == 0 {
			stream.WriteEmptyArray()
			return nil
		}
		stream.WriteArrayStart()
		for i, e := range x {
			if i > 0 {
				stream.WriteMore()
			}
			if err := writeValue(stream, e); err != nil {
				return err
			}
		}
		stream.WriteArrayEnd()
	case *Object:
		if x.Len() == 0 {
			stream.WriteEmptyObject()
			return nil
		}
		stream.WriteObjectStart()
		for i, m := range x.members() {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(m.Key)
			if err := writeValue(stream, m.Value); err != nil {
				return err
			}
		}
		stream.WriteObjectEnd()
	default:
		return fmt.Errorf("encode json: unsupported value %T", v)
	}
	return nil
}

// validNumber checks the RFC 8259 number grammar. The iterator only collects
// number characters without validating their arrangement.
func validNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && s[i] >= '1' && s[i] <= '9':
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	default:
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		if i == len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i == len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
