// Package cli implements the faculty command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/faculty/internal/config"
	"github.com/mesh-intelligence/faculty/internal/logging"
	"github.com/mesh-intelligence/faculty/internal/paths"
	"github.com/mesh-intelligence/faculty/internal/roster"
	"github.com/mesh-intelligence/faculty/pkg/sqlite"
	"github.com/mesh-intelligence/faculty/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// app is the state shared by every subcommand of one invocation. It is
// filled in by the root command's PersistentPreRunE.
type app struct {
	flags rootFlags

	configDir string
	dataDir   string
	settings  config.Settings
	sorter    *roster.Sorter

	newStore func() types.Store
	now      func() time.Time
}

// NewRootCmd creates the top-level "faculty" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{newStore: sqlite.NewBackend, now: time.Now})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "faculty",
		Short: "Manage a local roster of teachers",
		Long:  "Faculty creates, lists, searches, edits and deletes teacher records\nkept in a local data directory.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/faculty)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $XDG_DATA_HOME/faculty)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newEditCmd(a))
	root.AddCommand(newDeleteCmd(a))

	return root
}

// setup resolves directories, loads config.yaml and installs the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	settings, err := config.Load(configDir)
	if err != nil {
		return userError(err)
	}
	if a.flags.logLevel != "" {
		settings.LogLevel = a.flags.logLevel
	}
	if _, err := logging.Setup(cmd.ErrOrStderr(), settings.LogLevel); err != nil {
		return userError(err)
	}

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, settings.DataDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	tag, err := roster.ParseLocale(settings.Locale)
	if err != nil {
		return userError(err)
	}

	a.configDir = configDir
	a.dataDir = dataDir
	a.settings = settings
	a.sorter = roster.NewSorter(tag)
	slog.Debug("configuration loaded", "config_dir", configDir, "data_dir", dataDir, "sync_strategy", settings.SyncStrategy)
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		report(root.ErrOrStderr(), err)
	}
	os.Exit(exitCode(err))
}

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// userError marks err as caused by input: a validation failure, an unknown
// ID or a declined prompt.
func userError(err error) error { return &exitError{code: exitUserError, err: err} }

// sysError marks err as a storage or environment failure.
func sysError(err error) error { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by Execute to a process exit code.
// Errors not produced by userError or sysError (flag parsing, argument
// counts) are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

func report(w io.Writer, err error) {
	fmt.Fprintln(w, "faculty:", err)
}
