package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/faculty/internal/form"
	"github.com/mesh-intelligence/faculty/pkg/types"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		fields   fieldFlags
		inactive bool
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a teacher",
		Long: "Add a teacher. First name, last name, email and subject are required.\n" +
			"Date of birth and hire date default to today.",
		Example: "  faculty add --first-name Ada --last-name Smith --email ada@example.edu --subject Math",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withTeachers(func(table types.Table) error {
				f := form.NewAddForm(table, a.now())
				if err := fields.apply(cmd, &f.Fields); err != nil {
					return err
				}
				if inactive {
					f.IsActive = false
				}

				t, err := f.Save()
				if err != nil {
					return classify("add teacher", err)
				}
				slog.Debug("teacher added", "id", t.ID)
				return a.printTeacher(cmd.OutOrStdout(), t)
			})
		},
	}
	fields.register(cmd)
	cmd.Flags().BoolVar(&inactive, "inactive", false, "mark the teacher as not active")
	return cmd
}
