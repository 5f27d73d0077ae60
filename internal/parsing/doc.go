// Package parsing defines the source-faithful parse tree consumed by the suite
// builder, along with the Parser interface that produces it.
//
// The types here mirror what a suite file literally says. Nothing is
// resolved: settings that were not written are nil, rows appear exactly in
// file order, comment rows are kept. Concrete parsers, such as the HCL one,
// live in separate packages.
package parsing
