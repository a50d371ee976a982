package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/faculty/internal/config"
	"github.com/mesh-intelligence/faculty/pkg/types"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize faculty storage",
		Long:  "Create configuration and data directories, write a default config.yaml\nif none exists, then initialize the storage backend.",
		Args:  cobra.NoArgs,
		RunE:  a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	defaults := config.Defaults()
	if a.flags.dataDir != "" {
		defaults.DataDir = a.dataDir
	}
	wrote, err := config.WriteDefault(a.configDir, defaults)
	if err != nil {
		return sysError(err)
	}
	if wrote {
		slog.Debug("wrote default config", "path", config.Path(a.configDir))
	}

	// Attach creates the data directory and an empty teachers.jsonl.
	err = a.withTeachers(func(types.Table) error { return nil })
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Faculty initialized\nconfig: %s\ndata:   %s\n", config.Path(a.configDir), a.dataDir)
	return nil
}
