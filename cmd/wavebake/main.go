// Command wavebake renders the water surface to PNG images without a GPU.
package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wavefield/internal/config"
	"github.com/Faultbox/wavefield/internal/engine/water"
	"github.com/Faultbox/wavefield/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := initLogger(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("bake failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func initLogger(c config.LoggingConfig) error {
	var fileCfg logger.FileConfig
	if c.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(c.LogFile)
		fileCfg.Format = c.Format
	}
	return logger.InitWithFileConfig(c.Level, fileCfg, true)
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.Named("bake")
	log.Debug("config", zap.Any("config", cfg))

	if err := cfg.Water.Check(); err != nil {
		log.Warn("water parameters out of domain", zap.Error(err))
	}

	field, err := cfg.NewField()
	if err != nil {
		return err
	}
	b := cfg.Bake
	opts := water.BakeOptions{
		Width:       b.Width,
		Height:      b.Height,
		Supersample: b.Supersample,
		Grid:        cfg.Grid.NewGrid(),
		Eye:         b.Eye,
		Time:        b.Time,
		Params:      cfg.Water,
		Mode:        b.Mode,
	}

	log.Info("baking",
		zap.String("mode", b.Mode),
		zap.Int("width", b.Width),
		zap.Int("height", b.Height),
		zap.Int("frames", b.Frames),
		zap.Float64("fps", b.FPS),
		zap.String("noise", cfg.Noise.Source),
	)

	start := time.Now()
	err = water.BakeFrames(ctx, field, opts, b.Frames, b.FPS, func(i int, t float32, img image.Image) error {
		path := frameName(b.Out, i, b.Frames)
		if err := writePNG(path, img); err != nil {
			return err
		}
		log.Info("frame written", zap.Int("frame", i), zap.Float32("t", t), zap.String("path", path))
		return nil
	})
	if err != nil {
		return err
	}
	log.Info("done", zap.Int("frames", b.Frames), zap.Duration("elapsed", time.Since(start)))
	return nil
}

// frameName returns the output path of frame i. A pattern with a % verb is
// formatted with the index; otherwise sequences get a zero-padded suffix
// before the extension and single frames use out as is.
func frameName(out string, i, frames int) string {
	if strings.Contains(out, "%") {
		return fmt.Sprintf(out, i)
	}
	if frames <= 1 {
		return out
	}
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_%04d%s", strings.TrimSuffix(out, ext), i, ext)
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
