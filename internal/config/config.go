// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"petal/internal/task"
)

// Default values.
const (
	DefaultAccentColor = task.DefaultColor
	DefaultLogLevel    = "warn"
)

// Config holds the full configuration for petal. Everything is optional;
// a missing config file yields pure defaults.
type Config struct {
	// DBPath overrides the task database location (also settable via
	// the PETAL_DB environment variable, which wins over the file).
	DBPath string `toml:"db_path"`

	// AccentColor is the default color applied to new tasks.
	AccentColor string `toml:"accent_color"`

	// Logging
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AccentColor: DefaultAccentColor,
		LogLevel:    DefaultLogLevel,
	}
}

// DefaultPath returns the config file location (~/.petal.toml).
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".petal.toml"), nil
}

// Load reads the config file at path, or the default location when path
// is empty. A missing file is not an error; a malformed file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.AccentColor == "" {
		cfg.AccentColor = DefaultAccentColor
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return cfg, nil
}
