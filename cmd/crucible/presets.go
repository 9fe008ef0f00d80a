package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArthurMatthys/aoc/crucible"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the known presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := crucible.LoadPresets(flagConfig)
		if err != nil {
			return err
		}
		for _, name := range presets.Names() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %v\n", name, presets[name])
		}
		return nil
	},
}
