package sqlite

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/faculty/pkg/types"
)

// teacherJSON is one line of teachers.jsonl. Dates are calendar dates in
// YYYY-MM-DD form.
type teacherJSON struct {
	TeacherID   string `json:"teacher_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	PhoneNumber string `json:"phone_number"`
	DateOfBirth string `json:"date_of_birth"`
	HireDate    string `json:"hire_date"`
	IsActive    bool   `json:"is_active"`
}

// toTeacher converts a JSONL record into a *types.Teacher.
func (r teacherJSON) toTeacher() (*types.Teacher, error) {
	dob, err := types.ParseDate(r.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("teacher %s date_of_birth: %w", r.TeacherID, err)
	}
	hire, err := types.ParseDate(r.HireDate)
	if err != nil {
		return nil, fmt.Errorf("teacher %s hire_date: %w", r.TeacherID, err)
	}
	return &types.Teacher{
		ID:          r.TeacherID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Subject:     r.Subject,
		PhoneNumber: r.PhoneNumber,
		DateOfBirth: dob,
		HireDate:    hire,
		IsActive:    r.IsActive,
	}, nil
}

func teacherToJSON(t *types.Teacher) teacherJSON {
	return teacherJSON{
		TeacherID:   t.ID,
		FirstName:   t.FirstName,
		LastName:    t.LastName,
		Email:       t.Email,
		Subject:     t.Subject,
		PhoneNumber: t.PhoneNumber,
		DateOfBirth: formatDate(t.DateOfBirth),
		HireDate:    formatDate(t.HireDate),
		IsActive:    t.IsActive,
	}
}

func formatDate(t time.Time) string {
	return types.Date(t).Format(types.DateLayout)
}
