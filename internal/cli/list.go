package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.openTrainer()
			if err != nil {
				return err
			}
			return a.printRoster(cmd, tr.Pokedex.Records(), true)
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <index>",
		Short: "Show one Pokemon as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			tr, err := a.openTrainer()
			if err != nil {
				return err
			}
			p, err := tr.Pokedex.Get(i)
			if err != nil {
				return userError(err)
			}
			return printPokemon(cmd, p)
		},
	}
}
