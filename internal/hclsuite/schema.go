package hclsuite

import "github.com/hashicorp/hcl/v2"

var rowBlocks = []hcl.BlockHeaderSchema{
	{Type: "step"},
	{Type: "comment"},
	{Type: "for"},
}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "settings"},
		{Type: "variable", LabelNames: []string{"name"}},
		{Type: "keyword", LabelNames: []string{"name"}},
		{Type: "test", LabelNames: []string{"name"}},
	},
}

var settingsSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "documentation"},
		{Name: "force_tags"},
		{Name: "default_tags"},
		{Name: "test_template"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "test_timeout"},
		{Type: "suite_setup"},
		{Type: "suite_teardown"},
		{Type: "test_setup"},
		{Type: "test_teardown"},
		{Type: "metadata", LabelNames: []string{"name"}},
		{Type: "library", LabelNames: []string{"name"}},
		{Type: "resource", LabelNames: []string{"name"}},
		{Type: "variables", LabelNames: []string{"name"}},
	},
}

var variableSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "value"},
	},
}

var keywordSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "args"},
		{Name: "documentation"},
		{Name: "return"},
	},
	Blocks: append([]hcl.BlockHeaderSchema{
		{Type: "timeout"},
		{Type: "teardown"},
	}, rowBlocks...),
}

var testSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "documentation"},
		{Name: "tags"},
		{Name: "template"},
	},
	Blocks: append([]hcl.BlockHeaderSchema{
		{Type: "timeout"},
		{Type: "setup"},
		{Type: "teardown"},
	}, rowBlocks...),
}

var loopSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "vars", Required: true},
		{Name: "items"},
		{Name: "range"},
	},
	Blocks: rowBlocks,
}

// hclFixture is a setup or teardown block.
type hclFixture struct {
	Keyword string   `hcl:"keyword"`
	Args    []string `hcl:"args,optional"`
}

type hclTimeout struct {
	Value   string `hcl:"value,optional"`
	Message string `hcl:"message,optional"`
}

type hclMetadata struct {
	Value string `hcl:"value"`
}

// hclImport is the body of a library, resource or variables block.
type hclImport struct {
	Args  []string `hcl:"args,optional"`
	Alias string   `hcl:"alias,optional"`
}

type hclStep struct {
	Keyword string   `hcl:"keyword,optional"`
	Args    []string `hcl:"args,optional"`
	Assign  []string `hcl:"assign,optional"`
	Comment string   `hcl:"comment,optional"`
}

type hclComment struct {
	Text string `hcl:"text,optional"`
}
