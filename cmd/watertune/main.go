// Command watertune opens the water next to a panel of sliders and color
// editors for every wave parameter.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/wavefield/internal/config"
	"github.com/Faultbox/wavefield/internal/logger"
	"github.com/Faultbox/wavefield/internal/workbench"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	var fileCfg logger.FileConfig
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
		fileCfg.Format = cfg.Logging.Format
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== wavefield tuner ===")

	w, err := workbench.New(cfg)
	if err != nil {
		logger.Error("failed to create workbench", zap.Error(err))
		os.Exit(1)
	}
	defer w.Close()

	if err := w.Run(); err != nil {
		logger.Error("workbench error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("workbench closed normally")
}
