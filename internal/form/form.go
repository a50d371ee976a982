// Package form implements the add and edit forms for teacher records.
//
// Both forms hold their input in a Fields value and share one save rule:
// first name, last name, email and subject must be non-empty. The edit form
// works on a draft copy; nothing reaches the store until Save.
package form

import (
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/faculty/pkg/types"
)

// Form errors.
var (
	ErrIncomplete = errors.New("required fields are empty")
	ErrClosed     = errors.New("form is closed")
)

// Fields holds every user-editable teacher field.
type Fields struct {
	FirstName   string
	LastName    string
	Email       string
	Subject     string
	PhoneNumber string
	DateOfBirth time.Time
	HireDate    time.Time
	IsActive    bool
}

// CanSave reports whether the required fields are all non-empty.
func (f Fields) CanSave() bool {
	return len(f.Missing()) == 0
}

// Missing lists the required fields that are empty.
func (f Fields) Missing() []string {
	t := f.teacher("")
	return t.MissingRequired()
}

func (f Fields) teacher(id string) *types.Teacher {
	return &types.Teacher{
		ID:          id,
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Email:       f.Email,
		Subject:     f.Subject,
		PhoneNumber: f.PhoneNumber,
		DateOfBirth: types.Date(f.DateOfBirth),
		HireDate:    types.Date(f.HireDate),
		IsActive:    f.IsActive,
	}
}

// FieldsOf copies a teacher's editable fields.
func FieldsOf(t *types.Teacher) Fields {
	return Fields{
		FirstName:   t.FirstName,
		LastName:    t.LastName,
		Email:       t.Email,
		Subject:     t.Subject,
		PhoneNumber: t.PhoneNumber,
		DateOfBirth: t.DateOfBirth,
		HireDate:    t.HireDate,
		IsActive:    t.IsActive,
	}
}

// incomplete wraps ErrIncomplete with the names of the empty fields.
func incomplete(missing []string) error {
	return fmt.Errorf("%w: %v", ErrIncomplete, missing)
}
