package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/internal/paths"
	"github.com/mesh-intelligence/pokedex/internal/pokedex"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

func newInitCmd(a *app) *cobra.Command {
	var user bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the data directory and an empty roster",
		Long: `Create the configuration and data directories and an empty roster file.
An existing roster is left untouched. With --user the platform data directory
is recorded as data_dir in config.yaml and used from then on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user {
				dir, err := paths.DefaultDataDir()
				if err != nil {
					return sysError(fmt.Errorf("resolve user data dir: %w", err))
				}
				if err := setDataDirInFile(a.configDir, dir); err != nil {
					return sysError(fmt.Errorf("write config: %w", err))
				}
				a.cfg.DataDir = dir
			}

			if err := os.MkdirAll(a.cfg.DataDir, 0o755); err != nil {
				return sysError(fmt.Errorf("%w: create data directory: %w", types.ErrIO, err))
			}

			path := a.rosterPath()
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Roster already initialized at %s\n", path)
				return nil
			} else if !errors.Is(err, fs.ErrNotExist) {
				return sysError(fmt.Errorf("stat roster: %w", err))
			}

			if err := pokedex.New().SaveToFile(path); err != nil {
				return classify(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty roster at %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&user, "user", false, "store data in the platform data directory")
	return cmd
}
