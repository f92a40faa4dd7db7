/*
Package logging builds the structured logger used across the shell.

The logger never writes to the terminal: interactive output belongs to the
user and to child processes. Logs go to a file when one is configured and
are discarded otherwise.
*/
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/neo/internal/core/domain/settings"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON file logger configured by cfg, or a no-op logger when
// cfg.File is empty.
func New(cfg settings.Log) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory for %s: %w", cfg.File, err)
	}

	config := zap.NewProductionConfig()
	config.Level = level
	config.Encoding = "json"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{cfg.File}
	config.ErrorOutputPaths = []string{cfg.File}
	config.DisableStacktrace = true

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.With(zap.Int("pid", os.Getpid())), nil
}
