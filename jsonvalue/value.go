// Package jsonvalue holds the JSON document model shared by the deleter, the
// renamer and the pipeline.
//
// A Value is one of Null, Bool, Number, String, Array or *Object. Values are
// never mutated once built: every operation in this module constructs new
// containers and leaves its inputs untouched, so a Value can be shared between
// goroutines freely.
package jsonvalue

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a closed set of JSON variants. Use a type switch to dispatch on it.
type Value interface {
	Kind() Kind
	isValue()
}

type Null struct{}

type Bool bool

// Number keeps the literal text so decoding and re-encoding is lossless.
type Number string

type String string

// Array must not be modified after it is handed out; treat it as read only.
type Array []Value

func (Null) Kind() Kind    { return NullKind }
func (Bool) Kind() Kind    { return BoolKind }
func (Number) Kind() Kind  { return NumberKind }
func (String) Kind() Kind  { return StringKind }
func (Array) Kind() Kind   { return ArrayKind }
func (*Object) Kind() Kind { return ObjectKind }

func (Null) isValue()    {}
func (Bool) isValue()    {}
func (Number) isValue()  {}
func (String) isValue()  {}
func (Array) isValue()   {}
func (*Object) isValue() {}

// Int builds a Number from an integer.
func Int(i int64) Number {
	return Number(strconv.FormatInt(i, 10))
}

// Float64 parses the literal as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Equal reports whether a and b are structurally equal. Object member order is
// significant. Numbers are compared by value when both literals parse.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Null:
		return true
	case Bool:
		return x == b.(Bool)
	case String:
		return x == b.(String)
	case Number:
		y := b.(Number)
		if x == y {
			return true
		}
		fx, errx := x.Float64()
		fy, erry := y.Float64()
		return errx == nil && erry == nil && fx == fy
	case Array:
		y := b.(Array)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Object:
		y := b.(*Object)
		if x.Len() != y.Len() {
			return false
		}
		for i, m := range x.members() {
			n := y.members()[i]
			if m.Key != n.Key || !Equal(m.Value, n.Value) {
				return false
			}
		}
		return true
	}
	return false
}
