package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArthurMatthys/aoc"
	"github.com/ArthurMatthys/aoc/crucible"
)

var (
	solveLimits   limitFlags
	solveBaseline bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Print the minimum route cost",
	Long: `Print the minimum route cost for each selected preset. Presets are
solved concurrently and reported in the order given.

Examples:
  crucible solve input.txt
  crucible solve -p crucible -p ultra input.txt
  crucible solve --min 1 --max 5 < input.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveLimits.register(solveCmd, true)
	solveCmd.Flags().BoolVar(&solveBaseline, "baseline", false, "Also print the cost with no run limits")
}

type solveOutcome struct {
	cost int
	err  error
}

func runSolve(cmd *cobra.Command, args []string) error {
	configs, err := solveLimits.resolve(cmd)
	if err != nil {
		return err
	}
	g, err := loadGrid(args)
	if err != nil {
		return err
	}

	outcomes := aoc.Parallel(configs, func(nc namedConfig) solveOutcome {
		res, err := crucible.Search(g, nc.cfg, crucible.WithLogger(logger.With("preset", nc.name)))
		if err != nil {
			return solveOutcome{err: err}
		}
		return solveOutcome{cost: res.Cost}
	})

	out := cmd.OutOrStdout()
	var failed error
	for i, nc := range configs {
		o := outcomes[i]
		if o.err != nil {
			logger.Error("no route", "preset", nc.name, "limits", nc.cfg, "err", o.err)
			failed = fmt.Errorf("preset %s: %w", nc.name, o.err)
			continue
		}
		fmt.Fprintf(out, "%s (%v): %d\n", nc.name, nc.cfg, o.cost)
	}
	if solveBaseline {
		cost, err := crucible.Unconstrained(g)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "unconstrained: %d\n", cost)
	}
	return failed
}
