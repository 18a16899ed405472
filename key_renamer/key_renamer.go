// Package key_renamer renames top-level keys of JSON objects.
package key_renamer

import (
	"github.com/supp-info/wikiglue/jsonvalue"
)

// Rename returns a copy of obj where the member keyed oldKey is keyed newKey.
// Member order and values are kept. If newKey is already taken the two
// entries collapse into one: the key stays where it first appears and the
// value that comes later in obj wins.
func Rename(obj *jsonvalue.Object, oldKey, newKey string) *jsonvalue.Object {
	if !obj.Has(oldKey) || oldKey == newKey {
		return obj
	}
	b := jsonvalue.NewObjectBuilder(obj.Len())
	obj.Range(func(k string, v jsonvalue.Value) bool {
		if k == oldKey {
			k = newKey
		}
		b.Set(k, v)
		return true
	})
	return b.Build()
}

// RenameValue is Rename for any value. Anything but an object is returned
// unchanged.
func RenameValue(v jsonvalue.Value, oldKey, newKey string) jsonvalue.Value {
	if obj, ok := v.(*jsonvalue.Object); ok {
		return Rename(obj, oldKey, newKey)
	}
	return v
}

// KeyRenamer is a configured oldKey to newKey rename.
type KeyRenamer struct {
	OldKey string
	NewKey string
}

func NewKeyRenamer(oldKey, newKey string) *KeyRenamer {
	return &KeyRenamer{OldKey: oldKey, NewKey: newKey}
}

func (r *KeyRenamer) Rename(v jsonvalue.Value) jsonvalue.Value {
	return RenameValue(v, r.OldKey, r.NewKey)
}
