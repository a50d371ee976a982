package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/faculty/internal/form"
	"github.com/mesh-intelligence/faculty/internal/roster"
	"github.com/mesh-intelligence/faculty/pkg/types"
)

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a teacher after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return a.withTeachers(func(table types.Table) error {
				// Confirm the record exists so an unknown ID is a user error.
				t, err := table.Get(id)
				if err != nil {
					return classify("delete teacher", err)
				}

				l := roster.NewList(table, a.sorter)
				records, err := l.Records()
				if err != nil {
					return classify("delete teacher", err)
				}
				index := -1
				for i, r := range records {
					if r.ID == id {
						index = i
						break
					}
				}

				c := a.confirmer(yes, cmd.InOrStdin(), cmd.OutOrStdout())
				ok, err := l.DeleteAt(index, func(t *types.Teacher) (bool, error) {
					return form.ConfirmDelete(c, t)
				})
				if err != nil {
					return classify("delete teacher", err)
				}
				if !ok {
					return userError(errDeclined)
				}
				slog.Debug("teacher deleted", "id", id)
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", t.FullName())
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
