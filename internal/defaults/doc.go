// Package defaults resolves suite-level test settings (tags, template,
// timeout, setup and teardown) down a suite tree.
//
// Each suite gets exactly one View built from its own setting table and the
// View of its parent. A View is immutable once created, so it can be handed
// to any number of child suites and tests.
package defaults
