package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/suitebuilder/internal/builder"
	"github.com/specialistvlad/suitebuilder/internal/ctxlog"
	"github.com/specialistvlad/suitebuilder/internal/parsing"
	"github.com/specialistvlad/suitebuilder/internal/running"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	logger  *slog.Logger
	builder *builder.Builder
}

// NewApp is the constructor for the application. Logs are written to outW
// through an isolated logger; suite sources are read with parser.
func NewApp(outW io.Writer, cfg *Config, parser parsing.Parser) *App {
	logger := newLogger(cfg, outW)
	logger.Debug("Logger configured successfully.", "level", cfg.Level(), "format", cfg.LogFormat)

	return &App{
		logger:  logger,
		builder: builder.New(parser),
	}
}

// Build builds the running suite for the given sources using the App's logger.
func (a *App) Build(ctx context.Context, sources ...string) (*running.Suite, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	return a.builder.Build(ctx, sources...)
}
