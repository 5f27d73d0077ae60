package builder

import (
	"github.com/specialistvlad/suitebuilder/internal/defaults"
	"github.com/specialistvlad/suitebuilder/internal/parsing"
	"github.com/specialistvlad/suitebuilder/internal/running"
)

// newStep classifies a single raw row. It returns nil for rows that do not
// materialize, which are missing rows and comment-only rows.
func newStep(data *parsing.Step, kwType running.KeywordType, template string) running.Step {
	if data == nil || data.IsComment() {
		return nil
	}
	if data.IsForLoop() {
		return newForLoop(data.Loop, template)
	}
	if defaults.IsActiveTemplate(template) {
		return &running.Keyword{
			Name: template,
			Args: data.AsList(false),
			Type: running.KeywordTypeNormal,
		}
	}
	return &running.Keyword{
		Name:   data.Keyword,
		Args:   copyStrings(data.Args),
		Assign: copyStrings(data.Assign),
		Type:   kwType,
	}
}

// newForLoop builds a loop whose body is classified under the same template
// as the loop itself.
func newForLoop(data *parsing.Loop, template string) *running.ForLoop {
	loop := &running.ForLoop{
		Vars:  copyStrings(data.Vars),
		Items: copyStrings(data.Items),
		Range: data.Range,
	}
	loop.Steps = newSteps(data.Steps, template)
	return loop
}

// newSteps classifies body rows in order, skipping the ones that do not
// materialize.
func newSteps(rows []*parsing.Step, template string) []running.Step {
	steps := make([]running.Step, 0, len(rows))
	for _, row := range rows {
		if step := newStep(row, running.KeywordTypeNormal, template); step != nil {
			steps = append(steps, step)
		}
	}
	return steps
}

// newFixture classifies a setup or teardown. Templates never apply, and the
// explicit "NONE" fixture as well as a fixture without a keyword yields
// nothing.
func newFixture(data *parsing.Step, kwType running.KeywordType) *running.Keyword {
	if data == nil || data.Keyword == "" || data.IsNone() {
		return nil
	}
	kw, _ := newStep(data, kwType, "").(*running.Keyword)
	return kw
}

// newRawFixture copies a fixture exactly as written, "NONE" included.
func newRawFixture(data *parsing.Step, kwType running.KeywordType) *running.Keyword {
	kw, _ := newStep(data, kwType, "").(*running.Keyword)
	return kw
}

func copyStrings(in []string) []string {
	return append([]string{}, in...)
}
