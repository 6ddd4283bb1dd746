// Package config holds the settings shared by the demo programs, loaded from
// a TOML file and overridden by command-line flags
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/shadowcast/fov"
	"github.com/lixenwraith/shadowcast/grid"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Map generators
const (
	GeneratorCave = "cave"
	GeneratorMaze = "maze"
	GeneratorFile = "file"
)

type Config struct {
	FOV  FOV  `toml:"fov"`
	Map  Map  `toml:"map"`
	Demo Demo `toml:"demo"`
}

// FOV selects the field of view request
type FOV struct {
	Shape       string  `toml:"shape"`
	CornerPeek  string  `toml:"corner_peek"`
	OpaqueApply string  `toml:"opaque_apply"`
	Radius      int     `toml:"radius"`
	Beam        bool    `toml:"beam"`
	Direction   string  `toml:"direction"`
	Angle       float64 `toml:"angle"`
}

// Map selects how the map is built
type Map struct {
	Generator string  `toml:"generator"`
	File      string  `toml:"file"`
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Fill      float64 `toml:"fill"`
	Passes    int     `toml:"passes"`
	Braiding  float64 `toml:"braiding"`
	Seed      int64   `toml:"seed"`
}

// Demo holds interactive front-end options
type Demo struct {
	Sound  bool    `toml:"sound"`
	Volume float64 `toml:"volume"`
	Memory bool    `toml:"memory"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		FOV: FOV{
			Shape:       fov.ShapeCirclePrecalculate.String(),
			CornerPeek:  fov.CornerNoPeek.String(),
			OpaqueApply: fov.OpaqueApplyLighting.String(),
			Radius:      10,
			Direction:   fov.East.String(),
			Angle:       90,
		},
		Map: Map{
			Generator: GeneratorCave,
			Width:     120,
			Height:    60,
			Fill:      0.55,
			Passes:    1,
			Braiding:  0.3,
		},
		Demo: Demo{
			Sound:  true,
			Volume: 0.5,
			Memory: true,
		},
	}
}

// Load reads and validates the TOML file at path on top of the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults and validates the result.
// Unknown keys are rejected
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem found, each wrapping ErrInvalid
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if _, err := fov.ParseShape(c.FOV.Shape); err != nil {
		bad("fov.shape: %v", err)
	}
	if _, err := fov.ParseCornerPeek(c.FOV.CornerPeek); err != nil {
		bad("fov.corner_peek: %v", err)
	}
	if _, err := fov.ParseOpaqueApply(c.FOV.OpaqueApply); err != nil {
		bad("fov.opaque_apply: %v", err)
	}
	if _, err := fov.ParseDirection(c.FOV.Direction); err != nil {
		bad("fov.direction: %v", err)
	}
	if c.FOV.Radius < 1 {
		bad("fov.radius %d must be at least 1", c.FOV.Radius)
	}
	if !(c.FOV.Angle > 0 && c.FOV.Angle <= 360) {
		bad("fov.angle %g must be in (0, 360]", c.FOV.Angle)
	}

	switch c.Map.Generator {
	case GeneratorCave, GeneratorMaze:
		if c.Map.Width < 3 || c.Map.Height < 3 {
			bad("map size %dx%d must be at least 3x3", c.Map.Width, c.Map.Height)
		}
	case GeneratorFile:
		if c.Map.File == "" {
			bad("map.file is required for the file generator")
		}
	default:
		bad("map.generator %q is not one of cave, maze, file", c.Map.Generator)
	}
	if c.Map.Fill < 0 || c.Map.Fill >= 1 {
		bad("map.fill %g must be in [0, 1)", c.Map.Fill)
	}
	if c.Map.Braiding < 0 || c.Map.Braiding > 1 {
		bad("map.braiding %g must be in [0, 1]", c.Map.Braiding)
	}
	if c.Demo.Volume < 0 || c.Demo.Volume > 1 {
		bad("demo.volume %g must be in [0, 1]", c.Demo.Volume)
	}

	return errors.Join(errs...)
}

// Apply copies the shape and policies into s. The config must be valid
func (c *Config) Apply(s *fov.Settings) error {
	shape, err := fov.ParseShape(c.FOV.Shape)
	if err != nil {
		return err
	}
	peek, err := fov.ParseCornerPeek(c.FOV.CornerPeek)
	if err != nil {
		return err
	}
	apply, err := fov.ParseOpaqueApply(c.FOV.OpaqueApply)
	if err != nil {
		return err
	}
	s.Shape = shape
	s.CornerPeek = peek
	s.OpaqueApply = apply
	return nil
}

// Direction returns the parsed beam direction
func (c *Config) Direction() (fov.Direction, error) {
	return fov.ParseDirection(c.FOV.Direction)
}

// Encode writes the configuration as TOML
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// BuildMap creates the map the configuration describes
func (c *Config) BuildMap() (*grid.Map, error) {
	switch c.Map.Generator {
	case GeneratorFile:
		return grid.LoadFile(c.Map.File)
	case GeneratorMaze:
		return grid.Maze(grid.MazeConfig{
			Width:    c.Map.Width,
			Height:   c.Map.Height,
			Braiding: c.Map.Braiding,
			Seed:     c.Map.Seed,
		}), nil
	case GeneratorCave:
		return grid.Cave(grid.CaveConfig{
			Width:  c.Map.Width,
			Height: c.Map.Height,
			Fill:   c.Map.Fill,
			Passes: c.Map.Passes,
			Seed:   c.Map.Seed,
		}), nil
	}
	return nil, fmt.Errorf("%w: map.generator %q", ErrInvalid, c.Map.Generator)
}
