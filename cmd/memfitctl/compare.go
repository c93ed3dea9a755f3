package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/memfit/internal/render"
	"github.com/joshuapare/memfit/pkg/memfit"
)

func init() {
	rootCmd.AddCommand(newCompareCmd())
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <size>...",
		Short: "Run every strategy over the same processes",
		Long: `The compare command runs first-fit, best-fit, next-fit and worst-fit over
the same process sizes, each on its own fresh copy of the pool, and prints
one summary row per strategy.

Example:
  memfitctl compare 212 417 112 426
  memfitctl compare 212,417,112,426 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.Context(), args)
		},
	}
	return cmd
}

func runCompare(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	sizes, err := parseSizes(args)
	if err != nil {
		return err
	}

	p, err := activePool()
	if err != nil {
		return err
	}

	reports, err := memfit.Compare(ctx, p, sizes, simOptions())
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	summaries := make([]memfit.Summary, len(reports))
	for i, rep := range reports {
		summaries[i] = rep.Summary()
	}

	if jsonOut {
		return printJSON(summaries)
	}

	printInfo("\nComparing %d processes across %d blocks:\n\n", len(sizes), p.Len())
	printInfo("%s", newRenderer().Summary(summaryRows(summaries)))
	return nil
}

func summaryRows(summaries []memfit.Summary) []render.SummaryRow {
	rows := make([]render.SummaryRow, len(summaries))
	for i, s := range summaries {
		rows[i] = render.SummaryRow{
			Strategy:      s.Strategy,
			Placed:        s.Placed,
			Unplaced:      s.Unplaced,
			Allocated:     s.Allocated,
			Fragmentation: s.Fragmentation,
			Utilization:   s.Utilization,
		}
	}
	return rows
}
