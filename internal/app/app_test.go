package app

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/suitebuilder/internal/builder"
	"github.com/specialistvlad/suitebuilder/internal/hclsuite"
	"github.com/specialistvlad/suitebuilder/internal/running"
	"github.com/specialistvlad/suitebuilder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp creates an App reading from the given in-memory files and
// logging at debug level into the returned buffer.
func newTestApp(t *testing.T, files map[string]string) (*App, *testutil.SafeBuffer) {
	t.Helper()

	cfg, err := NewConfig(Config{LogLevel: "debug"})
	require.NoError(t, err)

	logs := &testutil.SafeBuffer{}
	fs := testutil.NewSuiteFs(t, files)
	return NewApp(logs, cfg, hclsuite.NewParser(fs)), logs
}

func TestApp_SingleSourcePlainStep(t *testing.T) {
	app, logs := newTestApp(t, map[string]string{
		"/hello.hcl": `
			test "Say Hello" {
				step {
					keyword = "Log"
					args    = ["hello"]
				}
			}
		`,
	})

	suite, err := app.Build(context.Background(), "/hello.hcl")

	require.NoError(t, err)
	assert.Equal(t, "Hello", suite.Name)
	require.Len(t, suite.Tests, 1)
	test := suite.Tests[0]
	assert.False(t, test.ContinueOnFailure)
	require.Len(t, test.Steps, 1)
	assert.Equal(t, &running.Keyword{
		Name: "Log", Args: []string{"hello"}, Assign: []string{}, Type: running.KeywordTypeNormal,
	}, test.Steps[0])

	assert.Contains(t, logs.String(), "Build: Suite construction successful.")
}

func TestApp_MissingSourceIsDataError(t *testing.T) {
	app, _ := newTestApp(t, map[string]string{})

	suite, err := app.Build(context.Background(), "/nowhere/missing.hcl")

	require.Error(t, err)
	require.Nil(t, suite)
	var dataErr *builder.DataError
	require.True(t, errors.As(err, &dataErr))
	assert.Contains(t, err.Error(), "Parsing '/nowhere/missing.hcl' failed:")
	assert.Contains(t, err.Error(), "/nowhere/missing.hcl")
}

func TestApp_InvalidSourceIsDataError(t *testing.T) {
	app, _ := newTestApp(t, map[string]string{
		"/ok.hcl":     `test "Fine" {}`,
		"/broken.hcl": `test "Broken" {`,
	})

	_, err := app.Build(context.Background(), "/ok.hcl", "/broken.hcl")

	var dataErr *builder.DataError
	require.True(t, errors.As(err, &dataErr))
	assert.Equal(t, "/broken.hcl", dataErr.Source)
	assert.Contains(t, err.Error(), "failed to parse HCL file /broken.hcl")
}

func TestApp_TwoSourcesUnderSyntheticRoot(t *testing.T) {
	app, _ := newTestApp(t, map[string]string{
		"/A.hcl": `
			settings {
				metadata "Owner" { value = "team-a" }
				test_template = "Check"
				force_tags    = ["a"]
			}
			test "a1" {
				step { args = ["1", "2"] }
			}
		`,
		"/B.hcl": `
			test "b1" {
				step { keyword = "No Operation" }
			}
		`,
	})

	root, err := app.Build(context.Background(), "/A.hcl", "/B.hcl")

	require.NoError(t, err)
	assert.Empty(t, root.Name)
	assert.Empty(t, root.Source)
	require.Len(t, root.Suites, 2)

	a, b := root.Suites[0], root.Suites[1]
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, "B", b.Name)
	assert.Equal(t, []running.Metadata{{Name: "Owner", Value: "team-a"}}, a.Metadata)
	assert.Empty(t, b.Metadata)

	assert.True(t, a.Tests[0].ContinueOnFailure)
	assert.Equal(t, "Check", a.Tests[0].Steps[0].(*running.Keyword).Name)

	b1 := b.Tests[0]
	assert.False(t, b1.ContinueOnFailure)
	assert.Empty(t, b1.Tags)
	assert.Equal(t, "No Operation", b1.Steps[0].(*running.Keyword).Name)
}

func TestApp_DirectorySuiteResolvesDefaults(t *testing.T) {
	app, _ := newTestApp(t, map[string]string{
		"/suites/__init__.hcl": `
			settings {
				force_tags = ["regression"]
				test_timeout {
					value   = "1 min"
					message = "too slow"
				}
				test_setup { keyword = "Reset State" }
			}
		`,
		"/suites/data_driven.hcl": `
			settings {
				test_template = "Login Should Fail"
				default_tags  = ["negative"]
			}

			keyword "Login Should Fail" {
				args = ["$${user}", "$${pass}"]
				step {
					keyword = "Login"
					args    = ["$${user}", "$${pass}"]
				}
			}

			test "Invalid Credentials" {
				step {
					args    = ["alice", "wrong"]
					comment = "# bad password"
				}
				comment { text = "# empty user next" }
				step { args = ["", "secret"] }
				for {
					vars  = ["$${name}"]
					items = ["bob", "carol"]
					step { args = ["$${name}", "x"] }
				}
			}

			test "Not Templated" {
				template = "NONE"
				tags     = ["manual"]
				timeout { value = "" }
				setup { keyword = "NONE" }
				step {
					keyword = "Log"
					args    = ["plain"]
				}
			}
		`,
	})

	root, err := app.Build(context.Background(), "/suites")

	require.NoError(t, err)
	assert.Equal(t, "Suites", root.Name)
	require.Len(t, root.Suites, 1)
	suite := root.Suites[0]
	assert.Equal(t, "Data Driven", suite.Name)

	require.Len(t, suite.UserKeywords, 1)
	uk := suite.UserKeywords[0]
	assert.Nil(t, uk.Timeout)
	assert.Equal(t, "Login", uk.Steps[0].(*running.Keyword).Name, "user keywords never use the template")

	templated := suite.Tests[0]
	assert.True(t, templated.ContinueOnFailure)
	assert.Equal(t, []string{"negative", "regression"}, templated.Tags)
	assert.Equal(t, &running.Timeout{Value: "1 min", Message: "too slow"}, templated.Timeout)
	require.NotNil(t, templated.Setup)
	assert.Equal(t, "Reset State", templated.Setup.Name)
	assert.Nil(t, templated.Teardown)

	require.Len(t, templated.Steps, 3)
	assert.Equal(t, &running.Keyword{Name: "Login Should Fail", Args: []string{"alice", "wrong"}, Type: running.KeywordTypeNormal}, templated.Steps[0])
	assert.Equal(t, &running.Keyword{Name: "Login Should Fail", Args: []string{"", "secret"}, Type: running.KeywordTypeNormal}, templated.Steps[1])
	loop, ok := templated.Steps[2].(*running.ForLoop)
	require.True(t, ok)
	assert.Equal(t, []string{"${name}"}, loop.Vars)
	assert.Equal(t, []string{"bob", "carol"}, loop.Items)
	require.Len(t, loop.Steps, 1)
	assert.Equal(t, &running.Keyword{Name: "Login Should Fail", Args: []string{"${name}", "x"}, Type: running.KeywordTypeNormal}, loop.Steps[0])

	plain := suite.Tests[1]
	assert.False(t, plain.ContinueOnFailure)
	assert.Equal(t, []string{"manual", "regression"}, plain.Tags)
	assert.Nil(t, plain.Timeout)
	assert.Nil(t, plain.Setup)
	assert.Equal(t, "Log", plain.Steps[0].(*running.Keyword).Name)
}
