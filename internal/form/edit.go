package form

import (
	"fmt"

	"github.com/mesh-intelligence/faculty/pkg/types"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

// DeletePrompt is the confirmation question shown before a teacher is deleted.
func DeletePrompt(t *types.Teacher) string {
	return fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.", t.FullName())
}

// ConfirmDelete asks c whether t should be deleted.
func ConfirmDelete(c Confirmer, t *types.Teacher) (bool, error) {
	return c.Confirm(DeletePrompt(t))
}

// EditForm edits a draft copy of an existing teacher.
type EditForm struct {
	// Fields is the draft. Changes are applied to the store only by Save.
	Fields

	original *types.Teacher
	table    types.Table
	closed   bool
}

// NewEditForm opens a form on a copy of t.
func NewEditForm(table types.Table, t *types.Teacher) *EditForm {
	return &EditForm{
		Fields:   FieldsOf(t),
		original: t.Clone(),
		table:    table,
	}
}

// Original returns the record as it was when the form was opened.
func (f *EditForm) Original() *types.Teacher { return f.original.Clone() }

// Closed reports whether the form was saved, cancelled or deleted.
func (f *EditForm) Closed() bool { return f.closed }

// Dirty reports whether the draft differs from the original record.
func (f *EditForm) Dirty() bool {
	draft := f.Fields.teacher(f.original.ID)
	orig := FieldsOf(f.original).teacher(f.original.ID)
	return *draft != *orig
}

// Save applies the draft to the store and closes the form. Returns
// ErrIncomplete without touching the store when CanSave is false.
func (f *EditForm) Save() (*types.Teacher, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if missing := f.Missing(); len(missing) > 0 {
		return nil, incomplete(missing)
	}
	t := f.Fields.teacher(f.original.ID)
	if err := f.table.Update(t); err != nil {
		return nil, fmt.Errorf("update teacher %s: %w", t.ID, err)
	}
	f.original = t.Clone()
	f.closed = true
	return t, nil
}

// Cancel discards the draft and closes the form. The stored record is
// unchanged.
func (f *EditForm) Cancel() {
	f.Fields = FieldsOf(f.original)
	f.closed = true
}

// Delete asks c to confirm, then deletes the record and closes the form.
// It reports whether the record was deleted; a declined prompt leaves the
// form open.
func (f *EditForm) Delete(c Confirmer) (bool, error) {
	if f.closed {
		return false, ErrClosed
	}
	ok, err := ConfirmDelete(c, f.original)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := f.table.Delete(f.original.ID); err != nil {
		return false, fmt.Errorf("delete teacher %s: %w", f.original.ID, err)
	}
	f.closed = true
	return true, nil
}
