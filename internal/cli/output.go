package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mesh-intelligence/faculty/internal/roster"
	"github.com/mesh-intelligence/faculty/pkg/types"
)

// teacherView is the JSON shape of a teacher on the command line. Dates
// are printed as calendar days.
type teacherView struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	PhoneNumber string `json:"phone_number"`
	DateOfBirth string `json:"date_of_birth"`
	HireDate    string `json:"hire_date"`
	IsActive    bool   `json:"is_active"`
}

func viewOf(t *types.Teacher) teacherView {
	return teacherView{
		ID:          t.ID,
		FirstName:   t.FirstName,
		LastName:    t.LastName,
		FullName:    t.FullName(),
		Email:       t.Email,
		Subject:     t.Subject,
		PhoneNumber: t.PhoneNumber,
		DateOfBirth: t.DateOfBirth.Format(types.DateLayout),
		HireDate:    t.HireDate.Format(types.DateLayout),
		IsActive:    t.IsActive,
	}
}

func (a *app) printTeacher(w io.Writer, t *types.Teacher) error {
	if a.flags.jsonMode {
		return writeJSON(w, viewOf(t))
	}
	v := viewOf(t)
	status := "Active"
	if !v.IsActive {
		status = roster.InactiveBadge
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", v.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", v.FullName)
	fmt.Fprintf(tw, "Email:\t%s\n", v.Email)
	fmt.Fprintf(tw, "Subject:\t%s\n", v.Subject)
	fmt.Fprintf(tw, "Phone:\t%s\n", v.PhoneNumber)
	fmt.Fprintf(tw, "Date of birth:\t%s\n", v.DateOfBirth)
	fmt.Fprintf(tw, "Hire date:\t%s\n", v.HireDate)
	fmt.Fprintf(tw, "Status:\t%s\n", status)
	return tw.Flush()
}

func (a *app) printRows(w io.Writer, rows []roster.Row) error {
	if a.flags.jsonMode {
		if rows == nil {
			rows = []roster.Row{}
		}
		return writeJSON(w, rows)
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "No teachers found")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSUBJECT\tEMAIL\tSTATUS\tID")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.FullName, r.Subject, r.Email, r.Badge, r.ID)
	}
	return tw.Flush()
}
