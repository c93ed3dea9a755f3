package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/memfit/alloc"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the placement strategies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStrategies()
	},
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}

var strategyHelp = map[alloc.Strategy]string{
	alloc.FirstFit: "lowest-indexed free block that fits",
	alloc.BestFit:  "smallest free block that fits",
	alloc.NextFit:  "first fit, resuming after the last placement",
	alloc.WorstFit: "largest free block that fits",
}

func runStrategies() error {
	if jsonOut {
		return printJSON(alloc.Strategies())
	}
	for _, s := range alloc.Strategies() {
		if verbose {
			printInfo("%-10s %s\n", s, strategyHelp[s])
			continue
		}
		printInfo("%s\n", s)
	}
	return nil
}
