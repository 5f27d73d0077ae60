package parsing

import "context"

// Parser is the interface for a format-specific suite source parser.
type Parser interface {
	// Parse reads the given source (a file or a directory) and returns its
	// parse tree. Child suites of a directory source are returned in
	// SuiteData.Children. A nil error comes with a non-nil suite.
	Parse(ctx context.Context, source string) (*SuiteData, error)
}
