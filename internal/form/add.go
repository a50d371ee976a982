package form

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/faculty/pkg/types"
)

// AddForm collects a new teacher.
type AddForm struct {
	Fields

	table  types.Table
	closed bool
}

// NewAddForm returns an open form with dates defaulted to the day of now
// and the active flag set.
func NewAddForm(table types.Table, now time.Time) *AddForm {
	return &AddForm{
		Fields: Fields{
			DateOfBirth: types.Date(now),
			HireDate:    types.Date(now),
			IsActive:    true,
		},
		table: table,
	}
}

// Closed reports whether the form was saved or cancelled.
func (f *AddForm) Closed() bool { return f.closed }

// Save creates a teacher with a fresh ID from the current fields, inserts
// it and closes the form. Returns ErrIncomplete without touching the store
// when CanSave is false.
func (f *AddForm) Save() (*types.Teacher, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if missing := f.Missing(); len(missing) > 0 {
		return nil, incomplete(missing)
	}
	t, err := types.NewTeacher(
		f.FirstName, f.LastName, f.Email, f.Subject, f.PhoneNumber,
		f.DateOfBirth, f.HireDate, f.IsActive,
	)
	if err != nil {
		return nil, err
	}
	if err := f.table.Insert(t); err != nil {
		return nil, fmt.Errorf("insert teacher: %w", err)
	}
	f.closed = true
	return t, nil
}

// Cancel discards the input and closes the form.
func (f *AddForm) Cancel() {
	f.Fields = Fields{}
	f.closed = true
}
