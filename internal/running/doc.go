// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package running provides the resolved, executable-ready model of a test
// suite tree. It is the output of the suite builder and the only input an
// execution engine needs.
//
// # Core Concepts
//
//   - Suite: A named collection of tests, user keywords, variables, imports and
//     child suites, corresponding to one parsed source.
//
//   - Test: A single test with its settings already resolved against every
//     enclosing suite. The engine never looks at suite defaults again.
//
//   - Step: A body row, either a Keyword call or a ForLoop wrapping more steps.
//
// Why a separate resolved model?
//
// The parse tree mirrors the source file: settings may be missing, rows may be
// comments, template rows carry data instead of keyword names. Collapsing all
// of that here keeps the engine simple and makes the result deterministic:
// every sequence in this package is ordered exactly as it was written.
package running
