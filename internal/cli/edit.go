package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/faculty/internal/form"
	"github.com/mesh-intelligence/faculty/pkg/types"
)

// errDeclined is returned when the user answers no to a delete prompt.
var errDeclined = errors.New("delete cancelled")

func newEditCmd(a *app) *cobra.Command {
	var (
		fields fieldFlags
		active bool
		del    bool
		yes    bool
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit or delete a teacher",
		Long: "Edit a teacher. Only the fields given as flags change; the record is\n" +
			"saved only if first name, last name, email and subject stay non-empty.\n" +
			"With --delete the teacher is removed after confirmation.",
		Example: "  faculty edit 0190f5c2-... --subject Physics --active=false\n" +
			"  faculty edit 0190f5c2-... --delete",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withTeachers(func(table types.Table) error {
				t, err := table.Get(args[0])
				if err != nil {
					return classify("edit teacher", err)
				}
				f := form.NewEditForm(table, t)
				out := cmd.OutOrStdout()

				if del {
					ok, err := f.Delete(a.confirmer(yes, cmd.InOrStdin(), out))
					if err != nil {
						return classify("delete teacher", err)
					}
					if !ok {
						return userError(errDeclined)
					}
					slog.Debug("teacher deleted", "id", t.ID)
					fmt.Fprintf(out, "Deleted %s\n", t.FullName())
					return nil
				}

				if err := fields.apply(cmd, &f.Fields); err != nil {
					return err
				}
				if cmd.Flags().Changed("active") {
					f.IsActive = active
				}
				if !f.Dirty() {
					f.Cancel()
					slog.Debug("no changes", "id", t.ID)
					return a.printTeacher(out, f.Original())
				}

				saved, err := f.Save()
				if err != nil {
					return classify("edit teacher", err)
				}
				slog.Debug("teacher updated", "id", saved.ID)
				return a.printTeacher(out, saved)
			})
		},
	}
	fields.register(cmd)
	cmd.Flags().BoolVar(&active, "active", true, "whether the teacher is active")
	cmd.Flags().BoolVar(&del, "delete", false, "delete the teacher instead of editing")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the delete confirmation")
	for _, name := range []string{flagFirstName, flagLastName, flagEmail, flagSubject, flagPhone, flagDOB, flagHireDate, "active"} {
		cmd.MarkFlagsMutuallyExclusive("delete", name)
	}
	return cmd
}
