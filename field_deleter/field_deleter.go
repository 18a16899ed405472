package field_deleter

import (
	"regexp"

	"github.com/supp-info/wikiglue/jsonvalue"
)

// FieldDeleter removes one addressed element from a document and returns the
// new document. The input is never modified.
type FieldDeleter interface {
	Delete(jsonvalue.Value) jsonvalue.Value
}

var (
	matchp = regexp.MustCompile(`^(\[.*?\])+$`)
	findp  = regexp.MustCompile(`\[(.*?)\]`)
)

// NewFieldDeleter builds a deleter from a field reference.
// "[a][b][0]" addresses a nested element, anything else a top-level key.
func NewFieldDeleter(template string) FieldDeleter {
	return NewPathDeleter(ParseFieldTemplate(template))
}

// ParseFieldTemplate turns "[a][b]" into the path [a b]. A template that is
// not made of bracketed parts is a single key.
func ParseFieldTemplate(template string) Path {
	if !matchp.MatchString(template) {
		return Path{Key(template)}
	}
	path := make(Path, 0)
	for _, v := range findp.FindAllStringSubmatch(template, -1) {
		path = append(path, Segment(v[1]))
	}
	return path
}
