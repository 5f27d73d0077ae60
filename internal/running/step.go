// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Step variants.
//
// Why a sealed interface?
//
// A body row is either a keyword call or a for loop and nothing else. The
// unexported marker method keeps other packages from adding variants, so a
// type switch over Keyword and ForLoop is exhaustive.
package running

// KeywordType is the position a keyword call occupies in its parent.
type KeywordType string

const (
	KeywordTypeNormal   KeywordType = "kw"
	KeywordTypeSetup    KeywordType = "setup"
	KeywordTypeTeardown KeywordType = "teardown"
)

// Step is a single resolved body row.
type Step interface {
	step()
}

// Keyword is a call to a library or user keyword.
type Keyword struct {
	Name   string
	Args   []string
	Assign []string
	Type   KeywordType
}

// ForLoop iterates its Steps over Items, binding Vars on each round.
type ForLoop struct {
	Vars  []string
	Items []string
	Range bool
	Steps []Step
}

func (*Keyword) step() {}
func (*ForLoop) step() {}
