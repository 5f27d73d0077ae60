// This file contains the logic for translating HCL blocks into the
// format-agnostic parse tree defined in the parsing package.

package hclsuite

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/suitebuilder/internal/parsing"
)

// decodeSuiteBody translates the top-level body of a suite file. The returned
// SuiteData has no Name or Source; the caller fills them in.
func decodeSuiteBody(body hcl.Body) (*parsing.SuiteData, hcl.Diagnostics) {
	content, diags := body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	data := &parsing.SuiteData{Settings: &parsing.SettingTable{}}

	settingsBlock, uniqueDiags := findUniqueBlock(content.Blocks, "settings")
	diags = append(diags, uniqueDiags...)
	if settingsBlock != nil {
		settings, settingsDiags := decodeSettings(settingsBlock.Body)
		diags = append(diags, settingsDiags...)
		if settings != nil {
			data.Settings = settings
		}
	}

	for _, block := range content.Blocks {
		switch block.Type {
		case "variable":
			v, varDiags := decodeVariable(block)
			diags = append(diags, varDiags...)
			data.Variables = append(data.Variables, v)
		case "keyword":
			kw, kwDiags := decodeKeyword(block)
			diags = append(diags, kwDiags...)
			data.Keywords = append(data.Keywords, kw)
		case "test":
			tc, testDiags := decodeTest(block)
			diags = append(diags, testDiags...)
			data.Tests = append(data.Tests, tc)
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return data, diags
}

func decodeSettings(body hcl.Body) (*parsing.SettingTable, hcl.Diagnostics) {
	content, diags := body.Content(settingsSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	settings := &parsing.SettingTable{}
	var d hcl.Diagnostics

	doc, d := stringAttr(content.Attributes, "documentation")
	diags = append(diags, d...)
	if doc != nil {
		settings.Doc = *doc
	}
	settings.ForceTags, d = listAttr(content.Attributes, "force_tags")
	diags = append(diags, d...)
	settings.DefaultTags, d = listAttr(content.Attributes, "default_tags")
	diags = append(diags, d...)
	settings.TestTemplate, d = stringAttr(content.Attributes, "test_template")
	diags = append(diags, d...)

	settings.TestTimeout, d = uniqueTimeout(content.Blocks, "test_timeout")
	diags = append(diags, d...)
	settings.SuiteSetup, d = uniqueFixture(content.Blocks, "suite_setup")
	diags = append(diags, d...)
	settings.SuiteTeardown, d = uniqueFixture(content.Blocks, "suite_teardown")
	diags = append(diags, d...)
	settings.TestSetup, d = uniqueFixture(content.Blocks, "test_setup")
	diags = append(diags, d...)
	settings.TestTeardown, d = uniqueFixture(content.Blocks, "test_teardown")
	diags = append(diags, d...)

	for _, block := range content.Blocks {
		switch block.Type {
		case "metadata":
			var meta hclMetadata
			diags = append(diags, gohcl.DecodeBody(block.Body, nil, &meta)...)
			settings.Metadata = append(settings.Metadata, &parsing.Metadata{
				Name:  block.Labels[0],
				Value: meta.Value,
			})
		case "library", "resource", "variables":
			var imp hclImport
			diags = append(diags, gohcl.DecodeBody(block.Body, nil, &imp)...)
			settings.Imports = append(settings.Imports, &parsing.Import{
				Type:  importTypes[block.Type],
				Name:  block.Labels[0],
				Args:  imp.Args,
				Alias: imp.Alias,
			})
		}
	}

	return settings, diags
}

var importTypes = map[string]string{
	"library":   parsing.ImportLibrary,
	"resource":  parsing.ImportResource,
	"variables": parsing.ImportVariables,
}

func decodeVariable(block *hcl.Block) (*parsing.Variable, hcl.Diagnostics) {
	content, diags := block.Body.Content(variableSchema)
	v := &parsing.Variable{Name: block.Labels[0]}
	if content == nil {
		return v, diags
	}
	if attr, ok := content.Attributes["value"]; ok {
		values, valueDiags := evalStrings(attr, true)
		diags = append(diags, valueDiags...)
		v.Value = values
	}
	return v, diags
}

func decodeKeyword(block *hcl.Block) (*parsing.UserKeyword, hcl.Diagnostics) {
	content, diags := block.Body.Content(keywordSchema)
	kw := &parsing.UserKeyword{Name: block.Labels[0]}
	if content == nil {
		return kw, diags
	}

	var d hcl.Diagnostics
	kw.Args, d = listAttr(content.Attributes, "args")
	diags = append(diags, d...)
	kw.Return, d = listAttr(content.Attributes, "return")
	diags = append(diags, d...)
	doc, d := stringAttr(content.Attributes, "documentation")
	diags = append(diags, d...)
	if doc != nil {
		kw.Doc = *doc
	}
	kw.Timeout, d = uniqueTimeout(content.Blocks, "timeout")
	diags = append(diags, d...)
	kw.Teardown, d = uniqueFixture(content.Blocks, "teardown")
	diags = append(diags, d...)
	kw.Steps, d = decodeRows(content.Blocks)
	diags = append(diags, d...)
	return kw, diags
}

func decodeTest(block *hcl.Block) (*parsing.TestCase, hcl.Diagnostics) {
	content, diags := block.Body.Content(testSchema)
	tc := &parsing.TestCase{Name: block.Labels[0]}
	if content == nil {
		return tc, diags
	}

	var d hcl.Diagnostics
	doc, d := stringAttr(content.Attributes, "documentation")
	diags = append(diags, d...)
	if doc != nil {
		tc.Doc = *doc
	}
	tc.Tags, d = listAttr(content.Attributes, "tags")
	diags = append(diags, d...)
	tc.Template, d = stringAttr(content.Attributes, "template")
	diags = append(diags, d...)
	tc.Timeout, d = uniqueTimeout(content.Blocks, "timeout")
	diags = append(diags, d...)
	tc.Setup, d = uniqueFixture(content.Blocks, "setup")
	diags = append(diags, d...)
	tc.Teardown, d = uniqueFixture(content.Blocks, "teardown")
	diags = append(diags, d...)
	tc.Steps, d = decodeRows(content.Blocks)
	diags = append(diags, d...)
	return tc, diags
}

// decodeRows translates the step, comment and for blocks among blocks, in
// source order. Other block types are ignored.
func decodeRows(blocks hcl.Blocks) ([]*parsing.Step, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	rows := []*parsing.Step{}

	for _, block := range blocks {
		switch block.Type {
		case "step":
			var s hclStep
			stepDiags := gohcl.DecodeBody(block.Body, nil, &s)
			diags = append(diags, stepDiags...)
			if stepDiags.HasErrors() {
				continue
			}
			if s.Keyword == "" && len(s.Args) == 0 && len(s.Assign) == 0 {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Empty step",
					Detail:   "A step block must set at least one of keyword, args or assign.",
					Subject:  &block.DefRange,
				})
				continue
			}
			rows = append(rows, &parsing.Step{
				Keyword:         s.Keyword,
				Args:            s.Args,
				Assign:          s.Assign,
				TrailingComment: s.Comment,
			})
		case "comment":
			var c hclComment
			diags = append(diags, gohcl.DecodeBody(block.Body, nil, &c)...)
			rows = append(rows, &parsing.Step{Comment: true, TrailingComment: c.Text})
		case "for":
			loop, loopDiags := decodeLoop(block.Body)
			diags = append(diags, loopDiags...)
			if loop != nil {
				rows = append(rows, &parsing.Step{Loop: loop})
			}
		}
	}
	return rows, diags
}

func decodeLoop(body hcl.Body) (*parsing.Loop, hcl.Diagnostics) {
	content, diags := body.Content(loopSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	loop := &parsing.Loop{}
	var d hcl.Diagnostics
	loop.Vars, d = listAttr(content.Attributes, "vars")
	diags = append(diags, d...)
	loop.Items, d = listAttr(content.Attributes, "items")
	diags = append(diags, d...)
	if attr, ok := content.Attributes["range"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &loop.Range)...)
	}
	loop.Steps, d = decodeRows(content.Blocks)
	diags = append(diags, d...)
	return loop, diags
}

func uniqueFixture(blocks hcl.Blocks, name string) (*parsing.Step, hcl.Diagnostics) {
	block, diags := findUniqueBlock(blocks, name)
	if block == nil {
		return nil, diags
	}
	var f hclFixture
	diags = append(diags, gohcl.DecodeBody(block.Body, nil, &f)...)
	return &parsing.Step{Keyword: f.Keyword, Args: f.Args}, diags
}

func uniqueTimeout(blocks hcl.Blocks, name string) (*parsing.Timeout, hcl.Diagnostics) {
	block, diags := findUniqueBlock(blocks, name)
	if block == nil {
		return nil, diags
	}
	var t hclTimeout
	diags = append(diags, gohcl.DecodeBody(block.Body, nil, &t)...)
	return &parsing.Timeout{Value: t.Value, Message: t.Message}, diags
}
