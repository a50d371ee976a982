package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/faculty/pkg/types"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Display a teacher with full details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withTeachers(func(table types.Table) error {
				t, err := table.Get(args[0])
				if err != nil {
					return classify("show teacher", err)
				}
				return a.printTeacher(cmd.OutOrStdout(), t)
			})
		},
	}
}
