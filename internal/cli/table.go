package cli

import (
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// newTable returns a tab-aligned writer on the command's stdout.
func newTable(cmd *cobra.Command) *tabwriter.Writer {
	return tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
}
