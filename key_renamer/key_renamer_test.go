package key_renamer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/supp-info/wikiglue/jsonvalue"
)

func obj(t *testing.T, text string) *jsonvalue.Object {
	t.Helper()
	v, err := jsonvalue.ParseString(text)
	require.NoError(t, err)
	o, ok := v.(*jsonvalue.Object)
	require.True(t, ok, "%s is not an object", text)
	return o
}

func encode(t *testing.T, v jsonvalue.Value) string {
	t.Helper()
	b, err := jsonvalue.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestRename(t *testing.T) {
	for _, c := range []struct {
		name     string
		in       string
		old, new string
		want     string
	}{
		{"keeps order", `{"a":1,"b":2,"c":3}`, "b", "z", `{"a":1,"z":2,"c":3}`},
		{"first key", `{"a":1,"b":2}`, "a", "x", `{"x":1,"b":2}`},
		{"missing key", `{"a":1}`, "x", "y", `{"a":1}`},
		{"same key", `{"a":1}`, "a", "a", `{"a":1}`},
		{"empty object", `{}`, "a", "b", `{}`},
		{"nested untouched", `{"a":{"a":1}}`, "a", "b", `{"b":{"a":1}}`},
		{"collision later value wins", `{"a":1,"z":9}`, "a", "z", `{"z":9}`},
		{"collision renamed value wins", `{"z":9,"a":1}`, "a", "z", `{"z":1}`},
		{"collision keeps neighbours", `{"q":0,"a":1,"r":2,"z":9}`, "a", "z", `{"q":0,"z":9,"r":2}`},
	} {
		t.Run(c.name, func(t *testing.T) {
			got := Rename(obj(t, c.in), c.old, c.new)
			require.Equal(t, c.want, encode(t, got))
		})
	}
}

func TestRenameDoesNotModifyInput(t *testing.T) {
	in := obj(t, `{"a":1,"b":2}`)
	out := Rename(in, "a", "c")

	require.Equal(t, []string{"a", "b"}, in.Keys())
	require.Equal(t, []string{"c", "b"}, out.Keys())
}

func TestRenameValue(t *testing.T) {
	arr := jsonvalue.MustParse(`["a","b"]`)
	require.True(t, jsonvalue.Equal(arr, RenameValue(arr, "a", "b")))

	s := jsonvalue.String("a")
	require.Equal(t, s, RenameValue(s, "a", "b"))

	r := NewKeyRenamer("Old Title", "New Title")
	got := r.Rename(jsonvalue.MustParse(`{"Old Title":{"text":"note"},"Other":{}}`))
	require.Equal(t, `{"New Title":{"text":"note"},"Other":{}}`, encode(t, got))
}
