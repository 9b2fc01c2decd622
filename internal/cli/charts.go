package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/internal/charts"
)

func newChartsCmd(a *app) *cobra.Command {
	var (
		outDir string
		prefix string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Write roster statistic charts as PNG files",
		Long: `Charts writes eight PNG bar charts: Pokemon per type and one chart for each of
total, hp, attack, Defense, sp_attack, sp_defense, and speed. Existing files
are replaced. An empty roster still produces all eight charts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := charts.Options{
				Dir:    a.cfg.ChartDir,
				Prefix: a.cfg.ChartPrefix,
				Width:  a.cfg.ChartWidth,
				Height: a.cfg.ChartHeight,
			}
			if cmd.Flags().Changed("out") {
				opts.Dir = outDir
			}
			if cmd.Flags().Changed("prefix") {
				opts.Prefix = prefix
			}
			if cmd.Flags().Changed("width") {
				opts.Width = width
			}
			if cmd.Flags().Changed("height") {
				opts.Height = height
			}

			tr, err := a.openTrainer()
			if err != nil {
				return err
			}
			written, err := tr.Pokedex.GenerateStatisticsCharts(opts)
			if err != nil {
				return classify(err)
			}
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default: chart_dir from config.yaml)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "filename prefix (default: chart_prefix from config.yaml)")
	cmd.Flags().IntVar(&width, "width", 0, "chart width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "chart height in pixels")
	return cmd
}
