// Package config loads accio's optional configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents accio configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// All reports every occurrence instead of stopping at the first one
	All bool `yaml:"all"`

	// Color controls colored log output (auto, always, never)
	Color string `yaml:"color"`

	// QueueLimit caps the number of pending directories (0 = unlimited)
	QueueLimit int `yaml:"queue_limit"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		All:        false,
		Color:      ColorAuto,
		QueueLimit: 0,
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/accio/config.yaml, or the
// platform equivalent. It returns "" when no config directory is known.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "accio", "config.yaml")
}

// LoadConfig loads configuration from the specified file path
// If the path is empty or the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var yamlCfg Config
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.All {
		cfg.All = yamlCfg.All
	}
	if yamlCfg.Color != "" {
		cfg.Color = yamlCfg.Color
	}
	if yamlCfg.QueueLimit != 0 {
		cfg.QueueLimit = yamlCfg.QueueLimit
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, all *bool, noColor *bool, queueLimit *int) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if all != nil {
		c.All = *all
	}
	if noColor != nil && *noColor {
		c.Color = ColorNever
	}
	if queueLimit != nil {
		c.QueueLimit = *queueLimit
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	if c.QueueLimit < 0 {
		return fmt.Errorf("queue_limit must be >= 0, got %d", c.QueueLimit)
	}

	return nil
}
