package parsing

import "strings"

// Step is a single raw row of a test or keyword body. It is also used for
// fixtures (setup/teardown settings), which only use Keyword and Args.
type Step struct {
	// Comment marks a row that holds nothing but a comment.
	Comment         bool
	Keyword         string
	Args            []string
	Assign          []string
	TrailingComment string

	// Loop is non-nil when the row is a for-loop header.
	Loop *Loop
}

// Loop is the header and body of a for loop.
type Loop struct {
	Vars  []string
	Items []string
	Range bool
	Steps []*Step
}

// IsComment reports whether the row holds only a comment.
func (s *Step) IsComment() bool {
	return s.Comment
}

// IsForLoop reports whether the row is a for-loop header.
func (s *Step) IsForLoop() bool {
	return s.Loop != nil
}

// IsNone reports whether the row is the explicit "NONE" fixture, which
// disables an inherited setup or teardown.
func (s *Step) IsNone() bool {
	return strings.EqualFold(s.Keyword, "NONE")
}

// AsList returns the row as it appears in the source: assignment targets,
// keyword and arguments, optionally followed by the trailing comment.
func (s *Step) AsList(includeComment bool) []string {
	row := make([]string, 0, len(s.Assign)+len(s.Args)+2)
	row = append(row, s.Assign...)
	if s.Keyword != "" {
		row = append(row, s.Keyword)
	}
	row = append(row, s.Args...)
	if includeComment && s.TrailingComment != "" {
		row = append(row, s.TrailingComment)
	}
	return row
}
