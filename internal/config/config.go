// Package config handles wavefield configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/wavefield/internal/engine/water"
	"github.com/Faultbox/wavefield/pkg/math"
	"github.com/Faultbox/wavefield/pkg/noise"
	"github.com/Faultbox/wavefield/pkg/wave"
)

// Config holds all settings shared by the bake tool and the viewer.
type Config struct {
	Water   wave.Params      `yaml:"water"`
	Sky     wave.GradientSky `yaml:"sky"`
	Noise   NoiseConfig      `yaml:"noise"`
	Grid    GridConfig       `yaml:"grid"`
	Bake    BakeConfig       `yaml:"bake"`
	Window  WindowConfig     `yaml:"window"`
	Logging LoggingConfig    `yaml:"logging"`

	// Path is the file the config was loaded from, empty for pure defaults.
	Path string `yaml:"-"`
}

// NoiseConfig selects the base noise of the height field.
type NoiseConfig struct {
	Source string `yaml:"source"` // noise.KindSimplex or noise.KindOpenSimplex
	Seed   int64  `yaml:"seed"`   // used by seeded sources only
}

// GridConfig describes the water plane.
type GridConfig struct {
	Width      float32   `yaml:"width"`
	Depth      float32   `yaml:"depth"`
	Resolution int       `yaml:"resolution"`
	Origin     math.Vec3 `yaml:"origin"`
}

// BakeConfig holds offline rendering settings.
type BakeConfig struct {
	Out         string    `yaml:"out"` // output file, or a pattern with %d for sequences
	Mode        string    `yaml:"mode"`
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	Supersample int       `yaml:"supersample"`
	Frames      int       `yaml:"frames"`
	FPS         float64   `yaml:"fps"`
	Time        float32   `yaml:"time"`
	Eye         math.Vec3 `yaml:"eye"`
}

// WindowConfig holds viewer display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	Format  string `yaml:"format"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Water: wave.DefaultParams(),
		Sky:   wave.DefaultSky,
		Noise: NoiseConfig{
			Source: noise.KindSimplex,
		},
		Grid: GridConfig{
			Width:      water.DefaultWidth,
			Depth:      water.DefaultDepth,
			Resolution: water.DefaultResolution,
			Origin:     water.DefaultOrigin,
		},
		Bake: BakeConfig{
			Out:         "water.png",
			Mode:        water.ModeColor,
			Width:       256,
			Height:      1024,
			Supersample: 1,
			Frames:      1,
			FPS:         30,
			Eye:         math.Vec3{X: 20, Y: 60, Z: 40},
		},
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
			Format:  "console",
		},
	}
}

// NewGrid builds the water grid described by the config.
func (g GridConfig) NewGrid() *water.Grid {
	return water.NewGrid(g.Width, g.Depth, g.Resolution, g.Origin)
}

// NewField builds the wave field with the configured noise and sky.
func (c *Config) NewField() (wave.Field, error) {
	src, err := noise.New(c.Noise.Source, c.Noise.Seed)
	if err != nil {
		return wave.Field{}, err
	}
	return wave.Field{Noise: src, Sky: c.Sky}, nil
}

// Validate reports settings the tools cannot run with. Out-of-domain water
// parameters are not errors here; see wave.Params.Check.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Depth <= 0 {
		errs = append(errs, fmt.Errorf("grid size %vx%v must be positive", c.Grid.Width, c.Grid.Depth))
	}
	if c.Bake.Width <= 0 || c.Bake.Height <= 0 {
		errs = append(errs, fmt.Errorf("bake size %dx%d must be positive", c.Bake.Width, c.Bake.Height))
	}
	if c.Bake.FPS <= 0 {
		errs = append(errs, fmt.Errorf("bake fps %v must be positive", c.Bake.FPS))
	}
	switch c.Bake.Mode {
	case water.ModeColor, water.ModeHeight:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", water.ErrUnknownMode, c.Bake.Mode))
	}
	switch c.Noise.Source {
	case "", noise.KindSimplex, noise.KindOpenSimplex:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", noise.ErrUnknownSource, c.Noise.Source))
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}
