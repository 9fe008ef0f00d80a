// crucible finds the cheapest route across a grid of digit costs when the
// walker must keep each straight leg within run limits.
//
// Usage:
//
//	crucible solve [file]     - Print the minimum cost for one or more presets
//	crucible route [file]     - Print the cost and draw the route
//	crucible presets          - List the known presets
//
// The grid is read from file, or from stdin when no file is given.
//
// Global flags:
//
//	--config <path>  - Presets yaml merged over the built-in presets
//	--debug          - Log search statistics
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDebug  bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "crucible"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crucible",
	Short: "Minimum-cost routes under straight-run limits",
	Long: `crucible reads a grid of digits, each the cost of entering that cell, and
finds the cheapest route from the top-left to the bottom-right cell. Each
straight leg must span between min_run+1 and max_run cells, and the walker
may never reverse.

Examples:
  crucible solve input.txt
  crucible solve --preset all --baseline input.txt
  crucible route --min 3 --max 10 input.txt
  crucible presets --config leashes.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Presets yaml file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log search statistics")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(presetsCmd)
}
