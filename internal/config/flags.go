package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window or output image width")
	flagHeight     = flag.Int("height", 0, "Window or output image height")
	flagOut        = flag.String("out", "", "Bake output file (use %d for frame sequences)")
	flagMode       = flag.String("mode", "", "Bake mode: color or height")
	flagFrames     = flag.Int("frames", 0, "Number of frames to bake")
	flagFPS        = flag.Float64("fps", 0, "Frames per second of a baked sequence")
	flagTime       = flag.Float64("time", -1, "Start time in seconds")
	flagNoise      = flag.String("noise", "", "Noise source: simplex or opensimplex")

	flagSeed *int64
	flagSet  []string
)

func init() {
	flag.Func("seed", "Seed for seeded noise sources", func(s string) error {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		flagSeed = &v
		return nil
	})
	flag.Func("set", "Override a water parameter as name=value (repeatable)", func(s string) error {
		if _, _, ok := strings.Cut(s, "="); !ok {
			return fmt.Errorf("expected name=value, got %q", s)
		}
		flagSet = append(flagSet, s)
		return nil
	})
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
		cfg.Bake.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
		cfg.Bake.Height = *flagHeight
	}
	if *flagOut != "" {
		cfg.Bake.Out = *flagOut
	}
	if *flagMode != "" {
		cfg.Bake.Mode = *flagMode
	}
	if *flagFrames > 0 {
		cfg.Bake.Frames = *flagFrames
	}
	if *flagFPS > 0 {
		cfg.Bake.FPS = *flagFPS
	}
	if *flagTime >= 0 {
		cfg.Bake.Time = float32(*flagTime)
	}
	if *flagNoise != "" {
		cfg.Noise.Source = *flagNoise
	}
	if flagSeed != nil {
		cfg.Noise.Seed = *flagSeed
	}
	for _, kv := range flagSet {
		name, value, _ := strings.Cut(kv, "=")
		if err := cfg.Water.SetString(strings.TrimSpace(name), strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("-set %s: %w", kv, err)
		}
	}
	return nil
}
