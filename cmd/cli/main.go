package main

import (
	"fmt"
	"os"

	"collapseviz/adapters/chart"
	"collapseviz/adapters/tabular"
	"collapseviz/app"
	"collapseviz/internal"
	"collapseviz/internal/config"
	"collapseviz/internal/report"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		input    string
		output   string
		show     bool
		title    string
		xLabel   string
		yLabel   string
		barAlpha float64
		legend   string
	)

	cmd := &cobra.Command{
		Use:   "collapseviz",
		Short: "Render quantum measurement count distributions",
		Long: `Load quantum register collapse measurement counts from a CSV or XLSX
file, compute descriptive statistics, export an annotated bar/line
distribution chart as a 300 DPI PNG, and print a statistical summary.

The input file needs a header with "Measurement" (state label) and
"Count" (non-negative integer) columns.

Example: collapseviz --input collapse_measurements.csv --output dist.png --show`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// A local .env is optional; absence is the normal case.
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags win over environment when set explicitly.
			flags := cmd.Flags()
			if flags.Changed("input") {
				cfg.Paths.Input = input
			}
			if flags.Changed("output") {
				cfg.Paths.Output = output
			}
			if flags.Changed("show") {
				cfg.Show = show
			}
			if flags.Changed("title") {
				cfg.Chart.Title = title
			}
			if flags.Changed("x-label") {
				cfg.Chart.XLabel = xLabel
			}
			if flags.Changed("y-label") {
				cfg.Chart.YLabel = yLabel
			}
			if flags.Changed("bar-alpha") {
				cfg.Chart.BarAlpha = barAlpha
			}
			if flags.Changed("legend") {
				cfg.Chart.LegendPosition = legend
			}

			chartCfg, err := chartConfig(cfg.Chart)
			if err != nil {
				return err
			}

			log := internal.NewDefaultLogger()
			renderer := chart.NewRenderer(chartCfg, log)

			var viewer app.Viewer
			if cfg.Show {
				viewer = renderer
			}

			svc := app.NewPipelineService(
				tabular.NewDataReader(cfg.Paths.Input),
				renderer,
				report.NewReporter(os.Stdout),
				viewer,
				cfg.Paths.Output,
				log,
			)
			return svc.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "collapse_measurements.csv", "input CSV or XLSX file")
	cmd.Flags().StringVarP(&output, "output", "o", "quantum_measurements.png", "output PNG path")
	cmd.Flags().BoolVar(&show, "show", false, "open the exported image in the OS viewer")
	cmd.Flags().StringVar(&title, "title", "", "chart title")
	cmd.Flags().StringVar(&xLabel, "x-label", "", "x-axis title")
	cmd.Flags().StringVar(&yLabel, "y-label", "", "y-axis title")
	cmd.Flags().Float64Var(&barAlpha, "bar-alpha", 0.7, "bar fill opacity (0-1)")
	cmd.Flags().StringVar(&legend, "legend", string(chart.LegendInset), "legend position: inset or outside")

	return cmd
}

// chartConfig folds the run-level cosmetic overrides into the default
// rendering context.
func chartConfig(opts config.ChartConfig) (chart.Config, error) {
	cfg := chart.DefaultConfig()
	if opts.Title != "" {
		cfg.Title = opts.Title
	}
	if opts.XLabel != "" {
		cfg.XLabel = opts.XLabel
	}
	if opts.YLabel != "" {
		cfg.YLabel = opts.YLabel
	}
	cfg.BarAlpha = opts.BarAlpha

	pos, err := chart.ParseLegendPosition(opts.LegendPosition)
	if err != nil {
		return chart.Config{}, err
	}
	cfg.LegendPosition = pos
	return cfg, nil
}
