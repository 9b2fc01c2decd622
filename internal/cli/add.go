package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/internal/pokedex"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

func newAddCmd(a *app) *cobra.Command {
	var record string

	cmd := &cobra.Command{
		Use:   "add [species]",
		Short: "Add a Pokemon to the roster",
		Long: `Add appends a built-in species or a full JSON record to the roster.

Built-in species: ` + strings.Join(types.SpeciesNames(), ", ") + `

Example:
  pokedex add pikachu
  pokedex add --record '{"name":"Testmon","National_number":"0123",...}'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newRecord(args, record)
			if err != nil {
				return err
			}

			tr, err := a.openTrainer()
			if err != nil {
				return err
			}
			if err := tr.Pokedex.AddExisting(p); err != nil {
				return userError(err)
			}
			if err := a.saveTrainer(tr); err != nil {
				return err
			}

			if a.flags.jsonMode {
				return printPokemon(cmd, p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (#%s) at index %d\n", p.Name, p.NationalNumber, tr.Pokedex.Len()-1)
			return nil
		},
	}
	cmd.Flags().StringVar(&record, "record", "", "full record as a JSON object")
	return cmd
}

// newRecord builds the record to add from a species argument or a JSON
// record, exactly one of which must be given.
func newRecord(args []string, record string) (*types.Pokemon, error) {
	switch {
	case len(args) == 1 && record != "":
		return nil, userError(fmt.Errorf("give a species or --record, not both"))
	case len(args) == 1:
		p, err := types.NewSpecies(args[0])
		if err != nil {
			return nil, userError(err)
		}
		return p, nil
	case record != "":
		p, err := pokedex.DecodeRecord([]byte(record))
		if err != nil {
			return nil, userError(err)
		}
		if err := p.Validate(); err != nil {
			return nil, userError(err)
		}
		return p, nil
	default:
		return nil, userError(fmt.Errorf("give a species or --record"))
	}
}
