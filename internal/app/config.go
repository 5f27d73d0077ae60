package app

import (
	"fmt"
	"log/slog"
)

// Config holds all the necessary configuration for an App instance.
type Config struct {
	LogFormat string // "text" or "json"
	LogLevel  string // a slog level name such as "debug", "info", "warn" or "error"

	level slog.Level
}

// NewConfig validates cfg and fills in defaults for empty fields. The log
// level is parsed once here; App never sees an invalid level.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if err := cfg.level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	return &cfg, nil
}

// Level returns the parsed log level.
func (c *Config) Level() slog.Level {
	return c.level
}
