package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/internal/pokedex"
	"github.com/mesh-intelligence/pokedex/internal/sqlite"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

func newQueryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "query [key=value...]",
		Short: "Query the roster with field filters",
		Long: `Query indexes the roster in SQLite and lists the records matching every
filter. Keys are roster field names; Abilities matches any one ability and
limit caps the result count. Values are parsed as JSON when possible.

Example:
  pokedex query Type=Fire
  pokedex query Type=Normal hp=55
  pokedex query Abilities="Thick Fat" limit=1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseFilter(args)
			if err != nil {
				return err
			}
			tr, err := a.openTrainer()
			if err != nil {
				return err
			}
			idx, err := a.openIndex(tr.Pokedex)
			if err != nil {
				return err
			}
			defer idx.Close()

			results, err := idx.Fetch(filter)
			if err != nil {
				if errors.Is(err, types.ErrInvalidField) || errors.Is(err, types.ErrInvalidFilter) {
					return userError(err)
				}
				return sysError(err)
			}
			return a.printRoster(cmd, results, false)
		},
	}
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Count Pokemon per primary type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.openTrainer()
			if err != nil {
				return err
			}
			idx, err := a.openIndex(tr.Pokedex)
			if err != nil {
				return err
			}
			defer idx.Close()

			counts, err := idx.TypeCounts()
			if err != nil {
				return sysError(err)
			}

			if a.flags.jsonMode {
				out, err := json.MarshalIndent(counts, "", "  ")
				if err != nil {
					return sysError(fmt.Errorf("marshal JSON: %w", err))
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			w := newTable(cmd)
			fmt.Fprintln(w, "TYPE\tCOUNT")
			for _, tc := range counts {
				fmt.Fprintf(w, "%s\t%d\n", tc.Type, tc.Count)
			}
			return w.Flush()
		},
	}
}

// openIndex builds the SQLite index for the roster in the data directory.
// The caller must Close the index.
func (a *app) openIndex(d *pokedex.Pokedex) (*sqlite.Index, error) {
	idx, err := sqlite.Open(a.cfg.DataDir)
	if err != nil {
		return nil, sysError(fmt.Errorf("open index: %w", err))
	}
	if err := idx.Load(d.Records()); err != nil {
		idx.Close()
		return nil, sysError(fmt.Errorf("index roster: %w", err))
	}
	a.logger.Printf("indexed %d pokemon in %s", d.Len(), idx.Path())
	return idx, nil
}
