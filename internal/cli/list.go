package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/faculty/internal/roster"
	"github.com/mesh-intelligence/faculty/pkg/types"
)

func newListCmd(a *app) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List teachers sorted by last name",
		Long: "List teachers sorted by last name. With --search, only teachers whose\n" +
			"full name, email or subject contains the text (ignoring case) are shown.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withTeachers(func(table types.Table) error {
				l := roster.NewList(table, a.sorter)
				l.SetQuery(search)
				rows, err := l.Rows()
				if err != nil {
					return classify("list teachers", err)
				}
				return a.printRows(cmd.OutOrStdout(), rows)
			})
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name, email or subject")
	return cmd
}
