package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const modulePath = "github.com/mesh-intelligence/faculty"

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/mesh-intelligence/faculty/internal/cli.Version=...".
var Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the faculty version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "faculty v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
