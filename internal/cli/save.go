package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save <file>",
		Short: "Export the roster to a file",
		Long:  `Save writes the whole roster to file, replacing any existing file.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.openTrainer()
			if err != nil {
				return err
			}
			if err := tr.Pokedex.SaveToFile(args[0]); err != nil {
				return classify(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d pokemon to %s\n", tr.Pokedex.Len(), args[0])
			return nil
		},
	}
}
