package defaults

import (
	"strings"

	"github.com/specialistvlad/suitebuilder/internal/parsing"
)

// View is the resolved settings snapshot of one suite level. A nil *View is
// valid and resolves every setting as unset.
type View struct {
	parent *View

	setup       *parsing.Step
	teardown    *parsing.Step
	timeout     *parsing.Timeout
	template    *string
	defaultTags []string
	forceTags   []string
}

// New creates the View of a suite from its setting table and the View of its
// parent suite, which is nil at the top of a build.
func New(settings *parsing.SettingTable, parent *View) *View {
	v := &View{parent: parent}
	if settings == nil {
		return v
	}
	v.setup = settings.TestSetup
	v.teardown = settings.TestTeardown
	v.timeout = settings.TestTimeout
	v.template = settings.TestTemplate
	v.defaultTags = settings.DefaultTags
	v.forceTags = settings.ForceTags
	return v
}

// Setup returns the test setup in effect at this level, or nil.
func (v *View) Setup() *parsing.Step {
	if v == nil {
		return nil
	}
	if v.setup != nil {
		return v.setup
	}
	return v.parent.Setup()
}

// Teardown returns the test teardown in effect at this level, or nil.
func (v *View) Teardown() *parsing.Step {
	if v == nil {
		return nil
	}
	if v.teardown != nil {
		return v.teardown
	}
	return v.parent.Teardown()
}

// Timeout returns the test timeout in effect at this level, or nil.
func (v *View) Timeout() *parsing.Timeout {
	if v == nil {
		return nil
	}
	if v.timeout != nil {
		return v.timeout
	}
	return v.parent.Timeout()
}

// Template returns the test template in effect at this level. The second
// return value is false when no level sets a template.
func (v *View) Template() (string, bool) {
	if v == nil {
		return "", false
	}
	if v.template != nil {
		return *v.template, true
	}
	return v.parent.Template()
}

// DefaultTags returns the default tags in effect at this level. Nil means no
// level sets them.
func (v *View) DefaultTags() []string {
	if v == nil {
		return nil
	}
	if v.defaultTags != nil {
		return v.defaultTags
	}
	return v.parent.DefaultTags()
}

// ForceTags returns the force tags of this level followed by those of every
// ancestor. Unlike the other settings they accumulate instead of overriding.
func (v *View) ForceTags() []string {
	if v == nil {
		return nil
	}
	return append(append([]string{}, v.forceTags...), v.parent.ForceTags()...)
}

// Values are the settings a single test runs with.
type Values struct {
	Tags     []string
	Template string
	Timeout  *parsing.Timeout
	Setup    *parsing.Step
	Teardown *parsing.Step
}

// HasTemplate reports whether the test runs under an active template.
func (vals Values) HasTemplate() bool {
	return IsActiveTemplate(vals.Template)
}

// EffectiveFor resolves the settings of a single test. Anything the test sets
// itself wins; everything else comes from this View.
func (v *View) EffectiveFor(tc *parsing.TestCase) Values {
	vals := Values{
		Setup:    v.Setup(),
		Teardown: v.Teardown(),
		Timeout:  v.Timeout(),
	}
	vals.Template, _ = v.Template()

	tags := v.DefaultTags()
	if tc == nil {
		vals.Tags = mergeTags(tags, v.ForceTags())
		return vals
	}
	if tc.Tags != nil {
		tags = tc.Tags
	}
	vals.Tags = mergeTags(tags, v.ForceTags())
	if tc.Template != nil {
		vals.Template = *tc.Template
	}
	if tc.Timeout != nil {
		vals.Timeout = tc.Timeout
	}
	if tc.Setup != nil {
		vals.Setup = tc.Setup
	}
	if tc.Teardown != nil {
		vals.Teardown = tc.Teardown
	}
	return vals
}

// IsActiveTemplate reports whether name activates templating: it must be
// non-empty and not "NONE" in any letter case.
func IsActiveTemplate(name string) bool {
	return name != "" && !strings.EqualFold(name, "NONE")
}

// mergeTags concatenates the tag lists, dropping empty and repeated tags
// while keeping the first occurrence.
func mergeTags(lists ...[]string) []string {
	seen := make(map[string]struct{})
	merged := []string{}
	for _, list := range lists {
		for _, tag := range list {
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			merged = append(merged, tag)
		}
	}
	return merged
}
