package field_deleter

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Segment is one step of a Path. It is kept as the raw token and only gets a
// numeric meaning when it is applied to an array.
type Segment string

func Key(k string) Segment {
	return Segment(k)
}

func Index(i int) Segment {
	return Segment(strconv.Itoa(i))
}

type Path []Segment

// NewPath builds a path from raw tokens, e.g. filter operator operands.
func NewPath(tokens ...string) Path {
	p := make(Path, len(tokens))
	for i, t := range tokens {
		p[i] = Segment(t)
	}
	return p
}

func (p Path) String() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteByte('[')
		b.WriteString(string(s))
		b.WriteByte(']')
	}
	return b.String()
}

// arrayIndex resolves the segment against an array of the given length.
// Negative values count from the end and are clamped at 0. The result may be
// length or more, meaning past the end. ok is false when the token is not a
// number.
func (s Segment) arrayIndex(length int) (idx int, ok bool) {
	raw := strings.TrimSpace(string(s))
	if raw == "" {
		// an empty token reads as 0
		return 0, true
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	// strconv also reads "inf" and "infinity" in any case; only the
	// spelled-out Infinity counts as a number here
	if math.IsInf(f, 0) && strings.TrimLeft(raw, "+-") != "Infinity" {
		return 0, false
	}
	if f < 0 {
		f = math.Max(0, float64(length)+f)
	}
	f = math.Trunc(f)
	if f >= float64(length) {
		return length, true
	}
	return int(f), true
}
