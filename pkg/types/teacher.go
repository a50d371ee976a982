package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used for DateOfBirth and HireDate
// in storage and on the command line.
const DateLayout = "2006-01-02"

// Required field names, reported by MissingRequired.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldSubject   = "subject"
)

// Teacher is the single record type managed by the roster.
type Teacher struct {
	ID          string    `json:"id"`            // UUID v7, assigned once by NewTeacher.
	FirstName   string    `json:"first_name"`    // Required.
	LastName    string    `json:"last_name"`     // Required.
	Email       string    `json:"email"`         // Required.
	Subject     string    `json:"subject"`       // Required.
	PhoneNumber string    `json:"phone_number"`  // Optional.
	DateOfBirth time.Time `json:"date_of_birth"` // Calendar date, midnight UTC.
	HireDate    time.Time `json:"hire_date"`     // Calendar date, midnight UTC.
	IsActive    bool      `json:"is_active"`
}

// NewTeacher constructs a Teacher with a freshly generated ID. Dates are
// truncated to calendar days.
func NewTeacher(firstName, lastName, email, subject, phoneNumber string, dateOfBirth, hireDate time.Time, isActive bool) (*Teacher, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating UUID v7: %w", err)
	}
	return &Teacher{
		ID:          id.String(),
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		Subject:     subject,
		PhoneNumber: phoneNumber,
		DateOfBirth: Date(dateOfBirth),
		HireDate:    Date(hireDate),
		IsActive:    isActive,
	}, nil
}

// FullName returns the first and last name separated by a single space.
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}

// MissingRequired returns the names of required fields that are empty,
// in form order. An empty result means the record may be saved.
func (t *Teacher) MissingRequired() []string {
	var missing []string
	if t.FirstName == "" {
		missing = append(missing, FieldFirstName)
	}
	if t.LastName == "" {
		missing = append(missing, FieldLastName)
	}
	if t.Email == "" {
		missing = append(missing, FieldEmail)
	}
	if t.Subject == "" {
		missing = append(missing, FieldSubject)
	}
	return missing
}

// Complete reports whether every required field is non-empty.
func (t *Teacher) Complete() bool {
	return len(t.MissingRequired()) == 0
}

// Clone returns an independent copy of the teacher.
func (t *Teacher) Clone() *Teacher {
	c := *t
	return &c
}

// Date truncates a time to its calendar day at midnight UTC, keeping the
// year, month and day as seen in the time's own location.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return d, nil
}
