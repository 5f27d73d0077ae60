package app

import (
	"io"
	"log/slog"
)

// newLogger builds the isolated logger of one App from a validated Config.
// The global slog logger is left untouched.
func newLogger(cfg *Config, outW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
