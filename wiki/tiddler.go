// Package wiki adapts the deleter and the renamer to a wiki host: the
// jsondelete filter operator and the hook that keeps the notes tiddler in step
// with tiddler renames. Storage and hook dispatch belong to the host and are
// only described here as interfaces.
package wiki

const (
	FieldTitle      = "title"
	FieldText       = "text"
	FieldCreated    = "created"
	FieldDraftTitle = "draft.title"
	FieldDraftOf    = "draft.of"
)

// Tiddler is a snapshot of a wiki record's fields.
type Tiddler struct {
	Fields map[string]string
}

func NewTiddler(fields map[string]string) *Tiddler {
	return &Tiddler{Fields: fields}
}

// Field returns the named field. ok is false when the field is not set, which
// is different from a field set to "".
func (t *Tiddler) Field(name string) (value string, ok bool) {
	if t == nil || t.Fields == nil {
		return "", false
	}
	value, ok = t.Fields[name]
	return
}

func (t *Tiddler) Title() string {
	title, _ := t.Field(FieldTitle)
	return title
}

// Store is the part of the host's tiddler storage the hook needs.
type Store interface {
	// Text returns the text field of a tiddler, ok is false if it does not exist.
	Text(title string) (text string, ok bool)
	SetText(title, text string) error
}
