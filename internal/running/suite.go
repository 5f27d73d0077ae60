// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Suite structure and the items owned directly by it.
package running

// Suite is a resolved test suite. All slices preserve source order.
type Suite struct {
	Name   string
	Source string
	Doc    string

	// Metadata is a slice, not a map, because the order is part of the output.
	Metadata     []Metadata
	Imports      []*Import
	Variables    []*Variable
	UserKeywords []*UserKeyword
	Tests        []*Test
	Suites       []*Suite

	Setup    *Keyword
	Teardown *Keyword
}

// NewSuite creates a new, empty Suite.
func NewSuite(name, source, doc string) *Suite {
	return &Suite{
		Name:   name,
		Source: source,
		Doc:    doc,
	}
}

// TestCount returns the number of tests in this suite and all its children.
func (s *Suite) TestCount() int {
	count := len(s.Tests)
	for _, child := range s.Suites {
		count += child.TestCount()
	}
	return count
}

// Metadata is a single name/value pair of suite metadata.
type Metadata struct {
	Name  string
	Value string
}

// Import is a library, resource file or variable file import.
type Import struct {
	Type  string
	Name  string
	Args  []string
	Alias string
}

// Variable is a suite-level variable. Value is a string for scalar
// (`${...}`) variables and a []string for everything else.
type Variable struct {
	Name  string
	Value any
}

// Timeout is a resolved timeout value and its optional failure message.
type Timeout struct {
	Value   string
	Message string
}
