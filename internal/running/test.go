// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Test and UserKeyword structures.
//
// Why do they differ in how timeouts and teardowns are stored?
//
// A Test's timeout, setup and teardown come out of the suite defaults chain
// and are fully resolved. A UserKeyword never takes part in that chain: its
// timeout and teardown are exactly what the keyword itself declares.
package running

// Test is a resolved test case.
type Test struct {
	Name string
	Doc  string
	Tags []string

	// ContinueOnFailure is true exactly when the test runs under an active
	// template.
	ContinueOnFailure bool
	Timeout           *Timeout

	Setup    *Keyword
	Teardown *Keyword
	Steps    []Step
}

// UserKeyword is a keyword implemented in the suite data itself.
type UserKeyword struct {
	Name     string
	Args     []string
	Doc      string
	Return   []string
	Timeout  *Timeout
	Teardown *Keyword
	Steps    []Step
}
