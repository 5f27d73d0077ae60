/*
Package builder turns the parse tree of one or more suite sources into the
resolved running model. It acts as the bridge between the source-faithful
'parsing' types and the executable 'running' types.

The construction of a suite is a top-down pass:

 1. Defaults: A defaults.View is created from the suite's own setting table
    and the View of its parent suite. Tests and child suites of this suite
    resolve their settings against it.

 2. Suite items: Metadata, imports, the suite setup and teardown, variables
    and user keywords are copied in source order. User keywords never see the
    suite defaults.

 3. Tests: Each test gets its effective settings from the View, then its
    setup, body rows and teardown are classified into running.Step values.
    Comment rows are dropped, loops recurse, and under an active template
    every body row becomes a call to the template keyword.

 4. Children: Child suites are built recursively with this suite's View as
    their parent.

When several sources are built together they are wrapped in a synthetic,
unnamed root suite. Each of them starts a fresh defaults chain.
*/
package builder
