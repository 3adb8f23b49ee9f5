package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"scalarmap/options"
)

// Config holds scalarmap configuration.
type Config struct {
	// Logging
	Log LogConfig `yaml:"log"`

	// Host value conversion
	Mapping MappingConfig `yaml:"mapping"`

	// Concurrent file loads (0 = unlimited)
	Workers int `yaml:"workers"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// MappingConfig configures how scalars become host values.
type MappingConfig struct {
	// Keep int, uint and counter as exact 64-bit integers instead of float64.
	ExactIntegers bool `yaml:"exact_integers"`
	// Emit timestamps as millisecond numbers instead of time values.
	RawTimestamps bool `yaml:"raw_timestamps"`
}

// Categories translates the mapping switches into conversion categories.
func (c MappingConfig) Categories() options.CategoryEnum {
	categories := options.CategoryDefault
	if c.ExactIntegers {
		categories = categories.Without(options.CategoryUnsafeNumber)
	}

	if c.RawTimestamps {
		categories = categories.Without(options.CategoryTimestamp)
	}

	return categories
}

// EnvLogLevel overrides Log.Level when set.
const EnvLogLevel = "SCALARMAP_LOG_LEVEL"

var (
	ValidLevels  = []string{"debug", "info", "warn", "error"}
	ValidFormats = []string{"json", "console"}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Workers: 4,
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; an empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = level
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !slices.Contains(ValidLevels, c.Log.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Log.Level, ValidLevels)
	}

	if !slices.Contains(ValidFormats, c.Log.Format) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Log.Format, ValidFormats)
	}

	if c.Workers < 0 {
		return fmt.Errorf("invalid workers: %d", c.Workers)
	}

	return nil
}
