package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/faculty/internal/form"
	"github.com/mesh-intelligence/faculty/pkg/types"
)

// Flag names shared by add and edit.
const (
	flagFirstName = "first-name"
	flagLastName  = "last-name"
	flagEmail     = "email"
	flagSubject   = "subject"
	flagPhone     = "phone"
	flagDOB       = "dob"
	flagHireDate  = "hire-date"
)

// fieldFlags binds the teacher field flags of one command.
type fieldFlags struct {
	firstName string
	lastName  string
	email     string
	subject   string
	phone     string
	dob       string
	hireDate  string
}

func (ff *fieldFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&ff.firstName, flagFirstName, "", "first name")
	f.StringVar(&ff.lastName, flagLastName, "", "last name")
	f.StringVar(&ff.email, flagEmail, "", "email address")
	f.StringVar(&ff.subject, flagSubject, "", "subject taught")
	f.StringVar(&ff.phone, flagPhone, "", "phone number")
	f.StringVar(&ff.dob, flagDOB, "", "date of birth, YYYY-MM-DD")
	f.StringVar(&ff.hireDate, flagHireDate, "", "hire date, YYYY-MM-DD")
}

// apply copies every flag the user set onto fields. Unset flags leave the
// form's value alone.
func (ff *fieldFlags) apply(cmd *cobra.Command, fields *form.Fields) error {
	changed := cmd.Flags().Changed
	if changed(flagFirstName) {
		fields.FirstName = ff.firstName
	}
	if changed(flagLastName) {
		fields.LastName = ff.lastName
	}
	if changed(flagEmail) {
		fields.Email = ff.email
	}
	if changed(flagSubject) {
		fields.Subject = ff.subject
	}
	if changed(flagPhone) {
		fields.PhoneNumber = ff.phone
	}
	if changed(flagDOB) {
		d, err := types.ParseDate(ff.dob)
		if err != nil {
			return userError(err)
		}
		fields.DateOfBirth = d
	}
	if changed(flagHireDate) {
		d, err := types.ParseDate(ff.hireDate)
		if err != nil {
			return userError(err)
		}
		fields.HireDate = d
	}
	return nil
}
