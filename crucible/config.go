package crucible

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

// Config holds the run limits of a search. A leg (a maximal straight
// sequence of steps) spans at least MinRun+1 and at most MaxRun cells.
type Config struct {
	MinRun int `yaml:"min_run"`
	MaxRun int `yaml:"max_run"`
}

// Canonical limits.
var (
	// Crucible turns after at most three cells and may turn at any time.
	Crucible = Config{MinRun: 0, MaxRun: 3}
	// Ultra travels four to ten cells before each turn.
	Ultra = Config{MinRun: 3, MaxRun: 10}
)

// Validate checks that both limits are non-negative and ordered.
func (c Config) Validate() error {
	if c.MinRun < 0 || c.MaxRun < 0 {
		return &ConfigError{Config: c, Err: ErrNegativeRun}
	}
	if c.MaxRun < c.MinRun {
		return &ConfigError{Config: c, Err: ErrRunOrder}
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("min=%d max=%d", c.MinRun, c.MaxRun)
}

//go:embed presets.yaml
var defaultPresetsYAML []byte

// Presets maps a preset name to its limits.
type Presets map[string]Config

// DefaultPresets returns the embedded presets.
func DefaultPresets() Presets {
	var p Presets
	if err := yaml.Unmarshal(defaultPresetsYAML, &p); err != nil {
		return Presets{"crucible": Crucible, "ultra": Ultra}
	}
	return p
}

// LoadPresets reads presets from a yaml file and merges them over the
// defaults. An empty path returns the defaults.
func LoadPresets(path string) (Presets, error) {
	p := DefaultPresets()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets %s: %w", path, err)
	}
	var user Presets
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to parse presets %s: %w", path, err)
	}
	maps.Copy(p, user)
	for _, name := range p.Names() {
		if err := p[name].Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return p, nil
}

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	names := maps.Keys(p)
	slices.Sort(names)
	return names
}

// Preset looks up a preset by name.
func (p Presets) Preset(name string) (Config, error) {
	c, ok := p[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return c, nil
}
