package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ArthurMatthys/aoc/crucible"
)

// loadGrid parses the grid named by args, or stdin when args is empty.
func loadGrid(args []string) (*crucible.Grid, error) {
	var r io.Reader = os.Stdin
	name := "<stdin>"
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, name = f, args[0]
	}
	g, err := crucible.ParseReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("grid loaded", "file", name, "rows", g.Rows(), "cols", g.Cols(), "hash", g.Hash())
	return g, nil
}

// namedConfig is a run-limit pair with the label it is reported under.
type namedConfig struct {
	name string
	cfg  crucible.Config
}

// limitFlags are the run-limit selection flags shared by solve and route.
type limitFlags struct {
	presets []string
	min     int
	max     int
}

func (lf *limitFlags) register(cmd *cobra.Command, multi bool) {
	if multi {
		cmd.Flags().StringSliceVarP(&lf.presets, "preset", "p", []string{"crucible"}, `Preset names, or "all"`)
	} else {
		cmd.Flags().StringSliceVarP(&lf.presets, "preset", "p", []string{"crucible"}, "Preset name")
	}
	cmd.Flags().IntVar(&lf.min, "min", 0, "Minimum run; overrides --preset")
	cmd.Flags().IntVar(&lf.max, "max", 3, "Maximum run; overrides --preset")
}

// resolve turns the flags into the configs to solve, in report order.
func (lf *limitFlags) resolve(cmd *cobra.Command) ([]namedConfig, error) {
	if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
		cfg := crucible.Config{MinRun: lf.min, MaxRun: lf.max}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return []namedConfig{{name: "custom", cfg: cfg}}, nil
	}
	presets, err := crucible.LoadPresets(flagConfig)
	if err != nil {
		return nil, err
	}
	names := lf.presets
	if len(names) == 1 && names[0] == "all" {
		names = presets.Names()
	}
	out := make([]namedConfig, 0, len(names))
	for _, name := range names {
		cfg, err := presets.Preset(name)
		if err != nil {
			return nil, err
		}
		out = append(out, namedConfig{name: name, cfg: cfg})
	}
	return out, nil
}
