package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/memfit/internal/units"
	"github.com/joshuapare/memfit/pkg/memfit"
)

var runTableOnly bool

func init() {
	cmd := newRunCmd()
	cmd.Flags().BoolVar(&runTableOnly, "table-only", false, "Print only the placement table")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [strategy] <size>...",
		Short: "Place processes into the pool with one strategy",
		Long: `The run command places the given process sizes, in order, into a fresh
copy of the pool using the named strategy. Sizes may be given as separate
arguments or comma-separated. When the strategy is omitted, MEMFIT_STRATEGY
is used (first-fit by default).

Strategies: first-fit, best-fit, next-fit, worst-fit.

Example:
  memfitctl run first-fit 212 417 112 426
  memfitctl run best 212,417,112,426 --json
  MEMFIT_STRATEGY=worst-fit memfitctl run 212 417`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args)
		},
	}
	return cmd
}

func runRun(args []string) error {
	name := cfg.Strategy
	if _, err := strconv.Atoi(strings.SplitN(args[0], ",", 2)[0]); err != nil {
		name, args = args[0], args[1:]
	}

	sizes, err := parseSizes(args)
	if err != nil {
		return err
	}
	if len(sizes) == 0 {
		return errors.New("no process sizes given")
	}

	p, err := activePool()
	if err != nil {
		return err
	}

	printVerbose("Running %s over %d processes\n", name, len(sizes))

	rep, err := memfit.Simulate(p, name, sizes, simOptions())
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if jsonOut {
		return printJSON(rep)
	}

	r := newRenderer()
	if !runTableOnly {
		printInfo("\n%s:\n\n", rep.Strategy)
		printInfo("%s\n", r.Result(rep.Result, rep.TotalSize))
	}
	printInfo("%s", r.Placements(rep.Result))

	sum := rep.Summary()
	printInfo("\nPlaced %d of %d processes, %s allocated, %s internal fragmentation (%s utilization)\n",
		sum.Placed, sum.Requests,
		units.Size(sum.Allocated), units.Size(sum.Fragmentation), units.Percent(sum.Utilization))
	return nil
}
