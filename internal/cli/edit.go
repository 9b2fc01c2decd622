package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/internal/prompt"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <index> [field value]",
		Short: "Edit one field of a Pokemon",
		Long: `Edit changes a single field of the Pokemon at index and saves the roster.
Without field and value the command prompts for both.

National_number is stored zero-padded to four digits. Height and Weight are
stored with one decimal digit and their unit, so 10m becomes 10.0m.

Example:
  pokedex edit 0 National_number 25
  pokedex edit 0 Height 10m
  pokedex edit 2`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("accepts <index> or <index> <field> <value>, received %d args", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			tr, err := a.openTrainer()
			if err != nil {
				return err
			}

			var p *types.Pokemon
			if len(args) == 3 {
				p, err = tr.Pokedex.Edit(i, args[1], args[2])
			} else {
				p, err = tr.Pokedex.Get(i)
				if err == nil {
					p, err = prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()).EditPokemon(p)
				}
			}
			if err != nil {
				return userError(err)
			}

			if err := a.saveTrainer(tr); err != nil {
				return err
			}
			if a.flags.jsonMode {
				return printPokemon(cmd, p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s at index %d\n", p.Name, i)
			return nil
		},
	}
}
