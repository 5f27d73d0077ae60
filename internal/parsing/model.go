package parsing

// SuiteData is the parse tree of one suite source.
type SuiteData struct {
	Name      string
	Source    string
	Settings  *SettingTable
	Variables []*Variable
	Keywords  []*UserKeyword
	Tests     []*TestCase
	Children  []*SuiteData
}

// SettingTable holds the suite-level settings. Nil pointers and nil slices
// mean the setting was not written; an empty non-nil slice is an explicit
// empty value.
type SettingTable struct {
	Doc      string
	Metadata []*Metadata
	Imports  []*Import

	SuiteSetup    *Step
	SuiteTeardown *Step

	TestSetup    *Step
	TestTeardown *Step
	TestTemplate *string
	TestTimeout  *Timeout
	ForceTags    []string
	DefaultTags  []string
}

// Metadata is a single free-form name/value pair of a suite.
type Metadata struct {
	Name  string
	Value string
}

// Import types.
const (
	ImportLibrary   = "Library"
	ImportResource  = "Resource"
	ImportVariables = "Variables"
)

// Import is a library, resource or variable file import.
type Import struct {
	Type  string
	Name  string
	Args  []string
	Alias string
}

// Timeout is a timeout setting as written.
type Timeout struct {
	Value   string
	Message string
}

// IsSet reports whether the timeout carries a value.
func (t *Timeout) IsSet() bool {
	return t != nil && t.Value != ""
}

// Variable is one record of the variable table. Value holds every cell
// after the name.
type Variable struct {
	Name  string
	Value []string
}

// IsEmpty reports whether the record carries no variable at all.
func (v *Variable) IsEmpty() bool {
	return v == nil || v.Name == ""
}

// UserKeyword is a keyword defined in the suite's keyword table.
type UserKeyword struct {
	Name     string
	Args     []string
	Doc      string
	Return   []string
	Timeout  *Timeout
	Teardown *Step
	Steps    []*Step
}

// TestCase is a test record. Tags, Template and Timeout are nil when the
// test does not set them itself.
type TestCase struct {
	Name     string
	Doc      string
	Tags     []string
	Template *string
	Timeout  *Timeout
	Setup    *Step
	Teardown *Step
	Steps    []*Step
}
