package builder

import (
	"context"
	"strings"

	"github.com/specialistvlad/suitebuilder/internal/ctxlog"
	"github.com/specialistvlad/suitebuilder/internal/defaults"
	"github.com/specialistvlad/suitebuilder/internal/parsing"
	"github.com/specialistvlad/suitebuilder/internal/running"
)

// assembleSuite builds one suite and, recursively, all its children. parent
// is the View of the enclosing suite, nil for a top-level suite.
func assembleSuite(ctx context.Context, data *parsing.SuiteData, parent *defaults.View) *running.Suite {
	ctx, logger := ctxlog.With(ctx, "suite", data.Name)

	settings := data.Settings
	if settings == nil {
		settings = &parsing.SettingTable{}
	}
	view := defaults.New(settings, parent)

	suite := running.NewSuite(data.Name, data.Source, settings.Doc)
	suite.Metadata = newMetadata(settings.Metadata)
	for _, imp := range settings.Imports {
		suite.Imports = append(suite.Imports, newImport(imp))
	}
	suite.Setup = newFixture(settings.SuiteSetup, running.KeywordTypeSetup)
	suite.Teardown = newFixture(settings.SuiteTeardown, running.KeywordTypeTeardown)

	for _, v := range data.Variables {
		if variable := newVariable(v); variable != nil {
			suite.Variables = append(suite.Variables, variable)
		}
	}
	for _, uk := range data.Keywords {
		suite.UserKeywords = append(suite.UserKeywords, newUserKeyword(uk))
	}
	for _, tc := range data.Tests {
		suite.Tests = append(suite.Tests, newTest(tc, view))
	}
	logger.Debug("Suite items assembled.",
		"source", data.Source,
		"imports", len(suite.Imports),
		"variables", len(suite.Variables),
		"keywords", len(suite.UserKeywords),
		"tests", len(suite.Tests),
	)

	for _, child := range data.Children {
		suite.Suites = append(suite.Suites, assembleSuite(ctx, child, view))
	}
	return suite
}

// newMetadata copies metadata pairs keeping their order.
func newMetadata(items []*parsing.Metadata) []running.Metadata {
	metadata := make([]running.Metadata, 0, len(items))
	for _, item := range items {
		metadata = append(metadata, running.Metadata{Name: item.Name, Value: item.Value})
	}
	return metadata
}

func newImport(data *parsing.Import) *running.Import {
	return &running.Import{
		Type:  data.Type,
		Name:  data.Name,
		Args:  copyStrings(data.Args),
		Alias: data.Alias,
	}
}

// newVariable returns nil for empty records. Scalar variables keep only the
// first value cell; every other kind keeps the whole list.
func newVariable(data *parsing.Variable) *running.Variable {
	if data.IsEmpty() {
		return nil
	}
	if strings.HasPrefix(data.Name, "$") {
		value := ""
		if len(data.Value) > 0 {
			value = data.Value[0]
		}
		return &running.Variable{Name: data.Name, Value: value}
	}
	return &running.Variable{Name: data.Name, Value: copyStrings(data.Value)}
}

// newUserKeyword copies a keyword as written. Its timeout and teardown are
// not resolved against suite defaults, and a "NONE" teardown is kept as a
// call to a keyword named NONE.
func newUserKeyword(data *parsing.UserKeyword) *running.UserKeyword {
	return &running.UserKeyword{
		Name:     data.Name,
		Args:     copyStrings(data.Args),
		Doc:      data.Doc,
		Return:   copyStrings(data.Return),
		Timeout:  newTimeout(data.Timeout),
		Teardown: newRawFixture(data.Teardown, running.KeywordTypeTeardown),
		Steps:    newSteps(data.Steps, ""),
	}
}

func newTest(data *parsing.TestCase, view *defaults.View) *running.Test {
	values := view.EffectiveFor(data)
	test := &running.Test{
		Name:              data.Name,
		Doc:               data.Doc,
		Tags:              values.Tags,
		ContinueOnFailure: values.HasTemplate(),
		Timeout:           newTimeout(values.Timeout),
	}
	test.Setup = newFixture(values.Setup, running.KeywordTypeSetup)
	test.Steps = newSteps(data.Steps, values.Template)
	test.Teardown = newFixture(values.Teardown, running.KeywordTypeTeardown)
	return test
}

func newTimeout(data *parsing.Timeout) *running.Timeout {
	if !data.IsSet() {
		return nil
	}
	return &running.Timeout{Value: data.Value, Message: data.Message}
}
