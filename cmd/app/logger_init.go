package main

import (
	"log/slog"
	"os"

	"github.com/osse101/LuckySpin_Go/internal/bootstrap"
	"github.com/osse101/LuckySpin_Go/internal/config"
	"github.com/osse101/LuckySpin_Go/internal/logger"
)

// initLogger installs the file+stdout logger, falling back to stdout only
// when the log directory is not writable. The returned file may be nil.
func initLogger(cfg *config.Config) *os.File {
	logFile, err := bootstrap.SetupLogger(cfg)
	if err == nil {
		return logFile
	}

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.AddSource(),
	))
	slog.Warn("File logging disabled", "log_dir", cfg.LogDir, "error", err)
	return nil
}
