package builder

import (
	"context"
	"errors"

	"github.com/specialistvlad/suitebuilder/internal/ctxlog"
	"github.com/specialistvlad/suitebuilder/internal/parsing"
	"github.com/specialistvlad/suitebuilder/internal/running"
)

// errNoSuite is reported when a parser returns neither a suite nor an error.
var errNoSuite = errors.New("parser returned no suite")

// Builder builds running suites from suite sources.
type Builder struct {
	parser parsing.Parser
}

// New creates a Builder that reads sources with the given parser.
func New(parser parsing.Parser) *Builder {
	return &Builder{parser: parser}
}

// Build parses and assembles the given sources. A single source yields its
// suite directly. Several sources are wrapped in an unnamed root suite, in
// input order, and do not share any defaults.
func (b *Builder) Build(ctx context.Context, sources ...string) (*running.Suite, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting suite construction.", "source_count", len(sources))

	if len(sources) == 1 {
		suite, err := b.buildSource(ctx, sources[0])
		if err != nil {
			return nil, err
		}
		logger.Info("Build: Suite construction successful.", "suite", suite.Name, "tests", suite.TestCount())
		return suite, nil
	}

	root := running.NewSuite("", "", "")
	for _, source := range sources {
		suite, err := b.buildSource(ctx, source)
		if err != nil {
			return nil, err
		}
		root.Suites = append(root.Suites, suite)
	}
	logger.Info("Build: Suite construction successful.", "suites", len(root.Suites), "tests", root.TestCount())
	return root, nil
}

// buildSource parses one source and assembles it as a top-level suite.
func (b *Builder) buildSource(ctx context.Context, source string) (*running.Suite, error) {
	ctx, logger := ctxlog.With(ctx, "source", source)

	data, err := b.parser.Parse(ctx, source)
	if err != nil {
		logger.Debug("Build: Parsing failed.", "error", err)
		return nil, &DataError{Source: source, Err: err}
	}
	if data == nil {
		return nil, &DataError{Source: source, Err: errNoSuite}
	}
	return assembleSuite(ctx, data, nil), nil
}
