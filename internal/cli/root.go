// Package cli implements the pokedex command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/internal/paths"
	"github.com/mesh-intelligence/pokedex/pkg/types"
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
	roster    string
	jsonMode  bool
	verbose   bool
}

// app is the state shared by one invocation of the root command.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	logger    *log.Logger
}

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// classify picks the exit code for an operation error: write failures are
// system errors, everything else is a user error.
func classify(err error) error {
	if errors.Is(err, types.ErrIO) {
		return sysError(err)
	}
	return userError(err)
}

// NewRootCmd creates the top-level "pokedex" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: log.New(io.Discard, "pokedex: ", 0)}

	root := &cobra.Command{
		Use:   "pokedex",
		Short: "Manage a roster of Pokemon",
		Long: `Pokedex keeps a roster of Pokemon records in a JSON file. Records can be
added from built-in species, edited field by field, imported and exported,
queried, and summarized as PNG statistic charts.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.pokedex-db)")
	root.PersistentFlags().StringVar(&a.flags.roster, "roster", "", "roster file (default: roster_file from config.yaml)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newEditCmd(a))
	root.AddCommand(newLoadCmd(a))
	root.AddCommand(newSaveCmd(a))
	root.AddCommand(newChartsCmd(a))
	root.AddCommand(newQueryCmd(a))
	root.AddCommand(newTypesCmd(a))
	root.AddCommand(newTrainerCmd(a))

	return root
}

// setup loads configuration for every command except version.
func (a *app) setup(cmd *cobra.Command) error {
	if a.flags.verbose {
		a.logger.SetOutput(cmd.ErrOrStderr())
	}
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	cfg, err := buildConfig(v, a.flags.dataDir, configDir)
	if err != nil {
		return userError(err)
	}

	a.configDir = configDir
	a.cfg = cfg
	a.logger.Printf("config dir %s, data dir %s", configDir, cfg.DataDir)
	return nil
}

// Run executes the CLI with args and returns the process exit code.
func Run(args []string, in io.Reader, out, errOut io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(errOut, "pokedex:", err)
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		return exitUserError
	}
	return exitSuccess
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
