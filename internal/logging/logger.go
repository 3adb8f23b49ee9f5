// Package logging builds the zap loggers used by the scalarmap command.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"scalarmap/internal/config"
)

// New builds a logger writing to stderr. Format "json" selects the production
// encoder, anything else the console encoder.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}

// FromConfig builds a logger from the log section of cfg. Verbose forces debug.
func FromConfig(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	level := cfg.Level
	if verbose {
		level = zapcore.DebugLevel.String()
	}

	return New(level, cfg.Format)
}
