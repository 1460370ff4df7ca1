// Package cliconfig reads the optional YAML file that controls the
// process's own logging.
package cliconfig

import (
	"fmt"
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

// Config holds the process-level settings that are not part of the
// transit network itself.
type Config struct {
	LogLevel string `yaml:"log-level"`
}

// ReadConfig reads and parses the YAML file at path. A missing file is
// not an error: the zero Config (info-level logging) is returned.
func ReadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps the configured level name to a slog.Level, defaulting
// to Info for an empty or unrecognized name.
func (self Config) SlogLevel() slog.Level {
	switch self.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
