package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/internal/prompt"
)

func newLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load [file]",
		Short: "Import records from a roster file",
		Long: `Load appends every record from a roster file to the roster and saves it.
The import is all-or-nothing: if any entry is missing a key nothing is added.
Without a file argument the command prompts for one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.openTrainer()
			if err != nil {
				return err
			}
			before := tr.Pokedex.Len()

			var file string
			if len(args) == 1 {
				file = args[0]
				err = tr.Pokedex.LoadFromFile(file)
			} else {
				file, err = prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()).LoadFile(tr.Pokedex)
			}
			if err != nil {
				return userError(err)
			}

			if err := a.saveTrainer(tr); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d pokemon from %s\n", tr.Pokedex.Len()-before, file)
			return nil
		},
	}
}
