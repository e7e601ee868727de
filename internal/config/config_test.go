package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/wavefield/internal/engine/water"
	"github.com/Faultbox/wavefield/pkg/math"
	"github.com/Faultbox/wavefield/pkg/noise"
	"github.com/Faultbox/wavefield/pkg/wave"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Water defaults are the tuned scene look
	if cfg.Water != wave.DefaultParams() {
		t.Errorf("expected default water params, got %+v", cfg.Water)
	}
	if cfg.Sky != wave.DefaultSky {
		t.Errorf("expected default sky, got %+v", cfg.Sky)
	}
	if cfg.Noise.Source != noise.KindSimplex {
		t.Errorf("expected simplex noise, got %s", cfg.Noise.Source)
	}

	// Grid defaults
	if cfg.Grid.Width != 110 || cfg.Grid.Depth != 600 {
		t.Errorf("expected grid 110x600, got %vx%v", cfg.Grid.Width, cfg.Grid.Depth)
	}
	if cfg.Grid.Resolution != 1024 {
		t.Errorf("expected resolution 1024, got %d", cfg.Grid.Resolution)
	}

	// Bake defaults
	if cfg.Bake.Mode != water.ModeColor {
		t.Errorf("expected color mode, got %s", cfg.Bake.Mode)
	}
	if cfg.Bake.Frames != 1 {
		t.Errorf("expected 1 frame, got %d", cfg.Bake.Frames)
	}

	// Window defaults
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected window 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
water:
  amplitude: 0.05
  iterations: 4
  peak_color: "#ff8000"

sky:
  zenith: "#000080"

noise:
  source: opensimplex
  seed: 42

grid:
  resolution: 64
  origin: {x: 1, y: 2, z: 3}

bake:
  mode: height
  frames: 12

window:
  fullscreen: true

logging:
  level: "debug"
  log_file: "wave.log"
  format: json
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Water.Amplitude != 0.05 {
		t.Errorf("expected amplitude 0.05, got %v", cfg.Water.Amplitude)
	}
	if cfg.Water.Iterations != 4 {
		t.Errorf("expected 4 iterations, got %d", cfg.Water.Iterations)
	}
	if cfg.Water.PeakColor != math.MustParseHex("#ff8000") {
		t.Errorf("expected peak color #ff8000, got %s", cfg.Water.PeakColor)
	}
	// Unset fields keep their defaults
	if cfg.Water.Frequency != wave.DefaultParams().Frequency {
		t.Errorf("expected default frequency, got %v", cfg.Water.Frequency)
	}
	if cfg.Sky.Horizon != wave.DefaultSky.Horizon {
		t.Errorf("expected default horizon, got %s", cfg.Sky.Horizon)
	}
	if cfg.Sky.Zenith != math.MustParseHex("#000080") {
		t.Errorf("expected zenith #000080, got %s", cfg.Sky.Zenith)
	}

	if cfg.Noise.Source != noise.KindOpenSimplex || cfg.Noise.Seed != 42 {
		t.Errorf("expected opensimplex seed 42, got %s seed %d", cfg.Noise.Source, cfg.Noise.Seed)
	}
	if cfg.Grid.Resolution != 64 {
		t.Errorf("expected resolution 64, got %d", cfg.Grid.Resolution)
	}
	if cfg.Grid.Origin != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("expected origin (1, 2, 3), got %v", cfg.Grid.Origin)
	}
	if cfg.Bake.Mode != water.ModeHeight || cfg.Bake.Frames != 12 {
		t.Errorf("expected height mode with 12 frames, got %s with %d", cfg.Bake.Mode, cfg.Bake.Frames)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "wave.log" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "water:\n  amplitude: not a number\n  invalid syntax here\n"},
		{"color", "water:\n  peak_color: \"#12345\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(tmpDir, tt.name+".yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			cfg := Default()
			if err := loadFromFile(cfg, configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("water:\n  amplitude: 0.01\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"bad mode", func(c *Config) { c.Bake.Mode = "normals" }, water.ErrUnknownMode},
		{"bad noise", func(c *Config) { c.Noise.Source = "perlin" }, noise.ErrUnknownSource},
		{"zero fps", func(c *Config) { c.Bake.FPS = 0 }, nil},
		{"empty grid", func(c *Config) { c.Grid.Width = 0 }, nil},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestNewField(t *testing.T) {
	cfg := Default()
	cfg.Noise.Source = "perlin"
	if _, err := cfg.NewField(); !errors.Is(err, noise.ErrUnknownSource) {
		t.Errorf("expected ErrUnknownSource, got %v", err)
	}

	cfg.Noise.Source = noise.KindOpenSimplex
	cfg.Noise.Seed = 7
	f, err := cfg.NewField()
	if err != nil {
		t.Fatal(err)
	}
	if f.Noise == nil || f.Sky != cfg.Sky {
		t.Errorf("field not built from config: %+v", f)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Bake.Width != 2560 {
					t.Errorf("expected width 2560, got window %d bake %d", cfg.Window.Width, cfg.Bake.Width)
				}
				if cfg.Window.Height != 1440 || cfg.Bake.Height != 1440 {
					t.Errorf("expected height 1440, got window %d bake %d", cfg.Window.Height, cfg.Bake.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "bake flags",
			setup: func() {
				*flagOut = "frames/%03d.png"
				*flagMode = water.ModeHeight
				*flagFrames = 48
				*flagFPS = 24
				*flagTime = 2.5
			},
			verify: func(cfg *Config) {
				b := cfg.Bake
				if b.Out != "frames/%03d.png" || b.Mode != water.ModeHeight || b.Frames != 48 || b.FPS != 24 || b.Time != 2.5 {
					t.Errorf("bake flags not applied: %+v", b)
				}
			},
			teardown: func() {
				*flagOut = ""
				*flagMode = ""
				*flagFrames = 0
				*flagFPS = 0
				*flagTime = -1
			},
		},
		{
			name: "noise flags",
			setup: func() {
				seed := int64(-9)
				*flagNoise = noise.KindOpenSimplex
				flagSeed = &seed
			},
			verify: func(cfg *Config) {
				if cfg.Noise.Source != noise.KindOpenSimplex || cfg.Noise.Seed != -9 {
					t.Errorf("noise flags not applied: %+v", cfg.Noise)
				}
			},
			teardown: func() {
				*flagNoise = ""
				flagSeed = nil
			},
		},
		{
			name: "set flags",
			setup: func() {
				flagSet = []string{"amplitude=0.07", "iterations = 3", "trough_color=#102030"}
			},
			verify: func(cfg *Config) {
				if cfg.Water.Amplitude != 0.07 {
					t.Errorf("expected amplitude 0.07, got %v", cfg.Water.Amplitude)
				}
				if cfg.Water.Iterations != 3 {
					t.Errorf("expected 3 iterations, got %d", cfg.Water.Iterations)
				}
				if cfg.Water.TroughColor != math.MustParseHex("#102030") {
					t.Errorf("expected trough color #102030, got %s", cfg.Water.TroughColor)
				}
			},
			teardown: func() {
				flagSet = nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags: %v", err)
			}
			tt.verify(cfg)
		})
	}
}

func TestApplyFlagsUnknownParam(t *testing.T) {
	flagSet = []string{"wobble=1"}
	defer func() { flagSet = nil }()

	if err := applyFlags(Default()); !errors.Is(err, wave.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
water:
  amplitude: 0.04
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	flagSet = []string{"amplitude=0.06"}
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
		flagSet = nil
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
	if cfg.Water.Amplitude != 0.06 {
		t.Errorf("expected amplitude 0.06 from -set, got %v", cfg.Water.Amplitude)
	}
	if cfg.Path != configPath {
		t.Errorf("expected Path %s, got %s", configPath, cfg.Path)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Water.Amplitude = 0.033
	cfg.Water.SurfaceColor = math.MustParseHex("#abcdef")
	cfg.Noise = NoiseConfig{Source: noise.KindOpenSimplex, Seed: 5}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Water != cfg.Water {
		t.Errorf("water params changed on round trip:\n got %+v\nwant %+v", loaded.Water, cfg.Water)
	}
	if loaded.Noise != cfg.Noise || loaded.Grid != cfg.Grid || loaded.Bake != cfg.Bake {
		t.Error("config sections changed on round trip")
	}
}

func TestSaveUsesLoadedPath(t *testing.T) {
	cfg := Default()
	cfg.Path = filepath.Join(t.TempDir(), "viewer.yaml")
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(cfg.Path); err != nil {
		t.Errorf("expected config at %s: %v", cfg.Path, err)
	}
}

func TestSaveDefaultsToConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())

	cfg := Default()
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(ConfigDir(), "config.yaml"); cfg.Path != want {
		t.Errorf("Path = %s, want %s", cfg.Path, want)
	}
	if _, err := os.Stat(cfg.Path); err != nil {
		t.Errorf("expected saved config: %v", err)
	}
}
