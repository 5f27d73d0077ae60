package defaults

import (
	"testing"

	"github.com/specialistvlad/suitebuilder/internal/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestView_NilResolvesEverythingUnset(t *testing.T) {
	var v *View

	assert.Nil(t, v.Setup())
	assert.Nil(t, v.Teardown())
	assert.Nil(t, v.Timeout())
	assert.Nil(t, v.DefaultTags())
	assert.Nil(t, v.ForceTags())
	_, ok := v.Template()
	assert.False(t, ok)

	vals := v.EffectiveFor(&parsing.TestCase{Name: "t"})
	assert.Empty(t, vals.Tags)
	assert.False(t, vals.HasTemplate())
}

func TestView_InheritsFromParent(t *testing.T) {
	parentSetup := &parsing.Step{Keyword: "Parent Setup"}
	parent := New(&parsing.SettingTable{
		TestSetup:    parentSetup,
		TestTeardown: &parsing.Step{Keyword: "Parent Teardown"},
		TestTimeout:  &parsing.Timeout{Value: "1 min"},
		TestTemplate: strPtr("Parent Template"),
		DefaultTags:  []string{"parent"},
	}, nil)

	child := New(&parsing.SettingTable{}, parent)
	grandchild := New(nil, child)

	for name, v := range map[string]*View{"child": child, "grandchild": grandchild} {
		t.Run(name, func(t *testing.T) {
			require.Same(t, parentSetup, v.Setup())
			require.Equal(t, "Parent Teardown", v.Teardown().Keyword)
			require.Equal(t, "1 min", v.Timeout().Value)
			tmpl, ok := v.Template()
			require.True(t, ok)
			require.Equal(t, "Parent Template", tmpl)
			require.Equal(t, []string{"parent"}, v.DefaultTags())
		})
	}
}

func TestView_LocalOverridesParent(t *testing.T) {
	parent := New(&parsing.SettingTable{
		TestSetup:    &parsing.Step{Keyword: "Parent Setup"},
		TestTimeout:  &parsing.Timeout{Value: "1 min"},
		TestTemplate: strPtr("Parent Template"),
		DefaultTags:  []string{"parent"},
	}, nil)

	child := New(&parsing.SettingTable{
		TestSetup:    &parsing.Step{Keyword: "Child Setup"},
		TestTimeout:  &parsing.Timeout{Value: "2 min"},
		TestTemplate: strPtr("NONE"),
		DefaultTags:  []string{},
	}, parent)

	require.Equal(t, "Child Setup", child.Setup().Keyword)
	require.Equal(t, "2 min", child.Timeout().Value)
	tmpl, ok := child.Template()
	require.True(t, ok)
	require.Equal(t, "NONE", tmpl)
	require.NotNil(t, child.DefaultTags())
	require.Empty(t, child.DefaultTags())

	// The parent is untouched.
	require.Equal(t, "Parent Setup", parent.Setup().Keyword)
}

func TestView_ForceTagsAccumulate(t *testing.T) {
	root := New(&parsing.SettingTable{ForceTags: []string{"root"}}, nil)
	mid := New(&parsing.SettingTable{}, root)
	leaf := New(&parsing.SettingTable{ForceTags: []string{"leaf"}}, mid)

	require.Equal(t, []string{"leaf", "root"}, leaf.ForceTags())
	require.Equal(t, []string{"root"}, mid.ForceTags())
}

func TestView_EffectiveFor(t *testing.T) {
	suite := New(&parsing.SettingTable{
		TestSetup:    &parsing.Step{Keyword: "Suite Setup"},
		TestTeardown: &parsing.Step{Keyword: "Suite Teardown"},
		TestTimeout:  &parsing.Timeout{Value: "1 min", Message: "slow"},
		TestTemplate: strPtr("Suite Template"),
		DefaultTags:  []string{"default"},
		ForceTags:    []string{"force"},
	}, nil)

	testCases := []struct {
		name     string
		tc       *parsing.TestCase
		validate func(t *testing.T, vals Values)
	}{
		{
			name: "test without settings gets suite values",
			tc:   &parsing.TestCase{Name: "plain"},
			validate: func(t *testing.T, vals Values) {
				assert.Equal(t, []string{"default", "force"}, vals.Tags)
				assert.Equal(t, "Suite Template", vals.Template)
				assert.True(t, vals.HasTemplate())
				assert.Equal(t, "1 min", vals.Timeout.Value)
				assert.Equal(t, "slow", vals.Timeout.Message)
				assert.Equal(t, "Suite Setup", vals.Setup.Keyword)
				assert.Equal(t, "Suite Teardown", vals.Teardown.Keyword)
			},
		},
		{
			name: "test values win",
			tc: &parsing.TestCase{
				Name:     "own",
				Tags:     []string{"own", "force"},
				Template: strPtr("Own Template"),
				Timeout:  &parsing.Timeout{Value: "5 s"},
				Setup:    &parsing.Step{Keyword: "Own Setup"},
				Teardown: &parsing.Step{Keyword: "Own Teardown"},
			},
			validate: func(t *testing.T, vals Values) {
				assert.Equal(t, []string{"own", "force"}, vals.Tags)
				assert.Equal(t, "Own Template", vals.Template)
				assert.Equal(t, "5 s", vals.Timeout.Value)
				assert.Equal(t, "Own Setup", vals.Setup.Keyword)
				assert.Equal(t, "Own Teardown", vals.Teardown.Keyword)
			},
		},
		{
			name: "explicit empty tags still get force tags",
			tc:   &parsing.TestCase{Name: "no tags", Tags: []string{}},
			validate: func(t *testing.T, vals Values) {
				assert.Equal(t, []string{"force"}, vals.Tags)
			},
		},
		{
			name: "NONE template disables templating",
			tc:   &parsing.TestCase{Name: "none", Template: strPtr("none")},
			validate: func(t *testing.T, vals Values) {
				assert.Equal(t, "none", vals.Template)
				assert.False(t, vals.HasTemplate())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.validate(t, suite.EffectiveFor(tc.tc))
		})
	}
}

func TestIsActiveTemplate(t *testing.T) {
	assert.False(t, IsActiveTemplate(""))
	assert.False(t, IsActiveTemplate("NONE"))
	assert.False(t, IsActiveTemplate("None"))
	assert.True(t, IsActiveTemplate("Login With"))
	assert.True(t, IsActiveTemplate("NONEXISTENT"))
}
