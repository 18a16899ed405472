package field_deleter

import (
	"github.com/supp-info/wikiglue/jsonvalue"
)

type PathDeleter struct {
	path Path
}

func NewPathDeleter(path Path) *PathDeleter {
	return &PathDeleter{
		path: append(Path(nil), path...),
	}
}

func (d *PathDeleter) Path() Path {
	return append(Path(nil), d.path...)
}

func (d *PathDeleter) Delete(v jsonvalue.Value) jsonvalue.Value {
	return Delete(v, d.path)
}

// Delete returns v without the element addressed by path. It never fails: a
// segment that does not resolve leaves that level unchanged. Only the
// containers along the path are rebuilt; untouched children are shared.
func Delete(v jsonvalue.Value, path Path) jsonvalue.Value {
	if len(path) == 0 {
		return v
	}
	first, rest := path[0], path[1:]

	switch x := v.(type) {
	case jsonvalue.Array:
		idx, ok := first.arrayIndex(len(x))
		if !ok || idx >= len(x) {
			return x
		}
		rst := make(jsonvalue.Array, 0, len(x))
		rst = append(rst, x[:idx]...)
		if len(rest) > 0 {
			rst = append(rst, Delete(x[idx], rest))
		}
		return append(rst, x[idx+1:]...)
	case *jsonvalue.Object:
		key := string(first)
		if len(rest) == 0 {
			return x.Without(key)
		}
		child, ok := x.Get(key)
		if !ok {
			return x
		}
		return x.With(key, Delete(child, rest))
	}
	return v
}
