package wiki

import (
	"errors"
	"fmt"

	"github.com/supp-info/wikiglue/jsonvalue"
	"github.com/supp-info/wikiglue/key_renamer"
	"k8s.io/klog/v2"
)

const (
	SavingTiddlerHook = "th-saving-tiddler"
	DefaultNotesTitle = "$:/supp-info/notes/content"
	DefaultIndent     = 4
)

var (
	ErrNotesMissing   = errors.New("notes tiddler does not exist")
	ErrNotesNotObject = errors.New("notes tiddler text is not a JSON object")
)

// SavingHook runs before a tiddler is saved and returns the tiddler to save.
type SavingHook func(newTiddler, oldTiddler *Tiddler) *Tiddler

// HookRegistry is the host's hook dispatcher.
type HookRegistry interface {
	AddHook(name string, hook SavingHook)
}

// RenameDetector decides whether saving newT over oldT renames a tiddler.
type RenameDetector interface {
	DetectRename(newT, oldT *Tiddler) (oldKey, newKey string, ok bool)
}

// DraftRenameDetector recognises a draft being saved under a new title: the
// new title is the draft's draft.title, the creation time is unchanged and
// the title differs from the one the draft was made of.
type DraftRenameDetector struct{}

func (DraftRenameDetector) DetectRename(newT, oldT *Tiddler) (string, string, bool) {
	if newT == nil || oldT == nil {
		return "", "", false
	}
	title, hasTitle := newT.Field(FieldTitle)
	draftTitle, hasDraftTitle := oldT.Field(FieldDraftTitle)
	if !hasTitle || !hasDraftTitle || title != draftTitle {
		return "", "", false
	}

	newCreated, newHas := newT.Field(FieldCreated)
	oldCreated, oldHas := oldT.Field(FieldCreated)
	if newHas != oldHas || newCreated != oldCreated {
		return "", "", false
	}

	draftOf, hasDraftOf := oldT.Field(FieldDraftOf)
	if hasDraftOf && title == draftOf {
		return "", "", false
	}

	oldKey := draftOf
	if oldKey == "" {
		oldKey = oldT.Title()
	}
	return oldKey, title, true
}

// NotesRenamer keeps the keys of the notes tiddler, a JSON object keyed by
// tiddler title, in step with renames.
type NotesRenamer struct {
	store      Store
	notesTitle string
	detector   RenameDetector
	indent     int
}

type Option func(*NotesRenamer)

func WithNotesTitle(title string) Option {
	return func(r *NotesRenamer) { r.notesTitle = title }
}

func WithDetector(d RenameDetector) Option {
	return func(r *NotesRenamer) { r.detector = d }
}

func WithIndent(indent int) Option {
	return func(r *NotesRenamer) { r.indent = indent }
}

func NewNotesRenamer(store Store, opts ...Option) *NotesRenamer {
	r := &NotesRenamer{
		store:      store,
		notesTitle: DefaultNotesTitle,
		detector:   DraftRenameDetector{},
		indent:     DefaultIndent,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Startup registers the rename hook with the host.
func Startup(reg HookRegistry, store Store, opts ...Option) *NotesRenamer {
	r := NewNotesRenamer(store, opts...)
	reg.AddHook(SavingTiddlerHook, r.OnSaving)
	return r
}

// OnSaving is the th-saving-tiddler hook. It never blocks the save: failures
// to update the notes are logged and newTiddler is returned regardless.
func (r *NotesRenamer) OnSaving(newTiddler, oldTiddler *Tiddler) *Tiddler {
	oldKey, newKey, ok := r.detector.DetectRename(newTiddler, oldTiddler)
	if !ok {
		return newTiddler
	}
	klog.V(2).Infof("rename detected: %q -> %q", oldKey, newKey)
	if err := r.Rename(oldKey, newKey); err != nil {
		klog.Errorf("could not rename %q to %q in %s: %v", oldKey, newKey, r.notesTitle, err)
	}
	return newTiddler
}

// Rename moves the note stored under oldKey to newKey and writes the notes
// tiddler back.
func (r *NotesRenamer) Rename(oldKey, newKey string) error {
	text, ok := r.store.Text(r.notesTitle)
	if !ok {
		return ErrNotesMissing
	}
	v, err := jsonvalue.ParseString(text)
	if err != nil {
		return fmt.Errorf("parse %s: %w", r.notesTitle, err)
	}
	notes, ok := v.(*jsonvalue.Object)
	if !ok {
		return fmt.Errorf("%w: got %s", ErrNotesNotObject, v.Kind())
	}

	b, err := jsonvalue.MarshalIndent(key_renamer.Rename(notes, oldKey, newKey), r.indent)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.notesTitle, err)
	}
	if err := r.store.SetText(r.notesTitle, string(b)); err != nil {
		return fmt.Errorf("save %s: %w", r.notesTitle, err)
	}
	return nil
}
