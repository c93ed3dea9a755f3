package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/memfit/pool"
)

func init() {
	rootCmd.AddCommand(newPoolCmd())
}

func newPoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Show the memory pool",
		Long: `The pool command shows the blocks a simulation starts from, drawn
proportionally to their capacity.

Example:
  memfitctl pool
  memfitctl pool --pool blocks.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPool()
		},
	}
	return cmd
}

type poolOutput struct {
	Blocks    []pool.Block `json:"blocks"`
	TotalSize int          `json:"totalSize"`
}

func runPool() error {
	p, err := activePool()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(poolOutput{Blocks: p.Blocks(), TotalSize: p.TotalSize()})
	}

	printInfo("\nMemory pool:\n\n")
	printInfo("%s", newRenderer().Pool(p))
	return nil
}
