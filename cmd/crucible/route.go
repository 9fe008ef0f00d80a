package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArthurMatthys/aoc/crucible"
)

var (
	routeLimits limitFlags
	routePlain  bool
)

var routeCmd = &cobra.Command{
	Use:   "route [file]",
	Short: "Draw the cheapest route",
	Long: `Solve for a single preset and draw the route over the grid. Each cell
on the route shows the direction it was entered from; the origin is '*'.

Examples:
  crucible route input.txt
  crucible route -p ultra --plain input.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoute,
}

func init() {
	routeLimits.register(routeCmd, false)
	routeCmd.Flags().BoolVar(&routePlain, "plain", false, "Disable colors")
}

func runRoute(cmd *cobra.Command, args []string) error {
	configs, err := routeLimits.resolve(cmd)
	if err != nil {
		return err
	}
	if len(configs) != 1 {
		return fmt.Errorf("route takes exactly one preset, got %d", len(configs))
	}
	nc := configs[0]
	g, err := loadGrid(args)
	if err != nil {
		return err
	}
	res, err := crucible.Search(g, nc.cfg, crucible.WithPath(), crucible.WithLogger(logger.With("preset", nc.name)))
	if err != nil {
		return fmt.Errorf("preset %s: %w", nc.name, err)
	}

	opts := crucible.DefaultRenderOptions()
	if routePlain {
		opts = crucible.PlainRenderOptions()
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%v): %d over %d moves\n", nc.name, nc.cfg, res.Cost, len(res.Moves))
	fmt.Fprintln(out, crucible.Render(g, res, opts))
	return nil
}
