// Package console holds the state model behind the admin editing screens:
// draft tracking for add and edit forms, the dirty guard on cancel, and
// positional editing of array-valued sub-fields.
package console

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrDiscardConfirmationRequired means the form has unsaved edits and
	// Cancel was called without the force flag.
	ErrDiscardConfirmationRequired = errors.New("form has unsaved edits")
	ErrFieldNotArray               = errors.New("field is not an array")
	ErrIndexOutOfRange             = errors.New("array index out of range")
)

// Submitter persists a finished draft. It is the accessor's add or update
// operation with the form plumbing stripped off.
type Submitter func(ctx context.Context, fields map[string]any) error

// Form is one open add or edit form. Original keeps the record as loaded so
// a cancelled edit can be compared and discarded; Draft is what the editor
// mutates. A zero Original means the form adds a new record.
type Form struct {
	Kind     string
	Original map[string]any
	Draft    map[string]any
	dirty    bool
}

// NewAddForm opens a blank form for a new record of the given kind.
func NewAddForm(kind string) *Form {
	return &Form{Kind: kind, Draft: map[string]any{}}
}

// NewEditForm opens a form pre-populated from an existing record. The
// record is deep-copied so draft edits never alias the caller's data.
func NewEditForm(kind string, record map[string]any) *Form {
	return &Form{
		Kind:     kind,
		Original: deepCopy(record),
		Draft:    deepCopy(record),
	}
}

// Dirty reports whether any field changed since the form was opened or
// last submitted.
func (f *Form) Dirty() bool { return f.dirty }

// Set assigns a top-level field and marks the form dirty.
func (f *Form) Set(field string, value any) {
	f.Draft[field] = value
	f.dirty = true
}

// Get reads a draft field.
func (f *Form) Get(field string) any { return f.Draft[field] }

// AppendTo appends value to the named array field, creating the array if
// the field is unset.
func (f *Form) AppendTo(field string, value any) error {
	arr, err := f.arrayField(field, true)
	if err != nil {
		return err
	}
	f.Draft[field] = append(arr, value)
	f.dirty = true
	return nil
}

// SetAt replaces the element at index in the named array field.
func (f *Form) SetAt(field string, index int, value any) error {
	arr, err := f.arrayField(field, false)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(arr) {
		return fmt.Errorf("%w: %s[%d]", ErrIndexOutOfRange, field, index)
	}
	arr[index] = value
	f.dirty = true
	return nil
}

// RemoveAt deletes the element at index, shifting later elements down.
func (f *Form) RemoveAt(field string, index int) error {
	arr, err := f.arrayField(field, false)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(arr) {
		return fmt.Errorf("%w: %s[%d]", ErrIndexOutOfRange, field, index)
	}
	f.Draft[field] = append(arr[:index], arr[index+1:]...)
	f.dirty = true
	return nil
}

// Cancel abandons the draft. A dirty form refuses unless force is set, so
// the caller can show a discard confirmation first. On success the draft
// is reset to the original record.
func (f *Form) Cancel(force bool) error {
	if f.dirty && !force {
		return ErrDiscardConfirmationRequired
	}
	f.Draft = deepCopy(f.Original)
	if f.Draft == nil {
		f.Draft = map[string]any{}
	}
	f.dirty = false
	return nil
}

// Submit hands the draft to submit. On failure the draft and dirty flag are
// left untouched so the editor keeps the entered data; on success the form
// becomes clean with the submitted fields as the new original.
func (f *Form) Submit(ctx context.Context, submit Submitter) error {
	if err := submit(ctx, deepCopy(f.Draft)); err != nil {
		return err
	}
	f.Original = deepCopy(f.Draft)
	f.dirty = false
	return nil
}

func (f *Form) arrayField(field string, create bool) ([]any, error) {
	v, ok := f.Draft[field]
	if !ok || v == nil {
		if !create {
			return nil, fmt.Errorf("%w: %s", ErrIndexOutOfRange, field)
		}
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotArray, field)
	}
	return arr, nil
}

// deepCopy clones JSON-shaped data, the only shapes forms carry.
func deepCopy(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return deepCopy(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}
