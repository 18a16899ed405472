package wiki

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONDelete(t *testing.T) {
	for _, c := range []struct {
		name     string
		source   []string
		operands []string
		want     []string
	}{
		{
			name:     "array index",
			source:   []string{`[10,20,30]`},
			operands: []string{"1"},
			want:     []string{`[10,30]`},
		},
		{
			name:     "nested key",
			source:   []string{`{"a":{"x":1,"y":2}}`},
			operands: []string{"a", "y"},
			want:     []string{`{"a":{"x":1}}`},
		},
		{
			name:     "negative index",
			source:   []string{`[1,2,3]`, `[1,2,3]`},
			operands: []string{"-1"},
			want:     []string{`[1,2]`, `[1,2]`},
		},
		{
			name:     "no operands reformats",
			source:   []string{`{ "a" : 1 }`},
			operands: nil,
			want:     []string{`{"a":1}`},
		},
		{
			name:     "skips non json and falsy documents",
			source:   []string{`not json`, `null`, `false`, `0`, `""`, `{"k":1}`, `"text"`, `1`},
			operands: []string{"k"},
			want:     []string{`{}`, `"text"`, `1`},
		},
		{
			name:   "empty source",
			source: nil,
			want:   []string{},
		},
	} {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, JSONDelete(c.source, c.operands))
		})
	}
}

func TestLookupOperator(t *testing.T) {
	op, ok := LookupOperator("jsondelete")
	require.True(t, ok)
	require.Equal(t, []string{`{}`}, op([]string{`{"a":1}`}, []string{"a"}))

	_, ok = LookupOperator("jsonset")
	require.False(t, ok)
}
