// Package hclsuite is the HCL implementation of the parsing.Parser interface.
//
// A suite source is either a single .hcl file or a directory. A directory is
// a suite whose children are its .hcl files and sub-directories in lexical
// order; an optional __init__.hcl file in it carries the directory suite's
// own settings, variables and keywords.
//
// A suite file may contain these top-level blocks, all optional:
//
//	settings {
//	  documentation = "..."
//	  force_tags    = ["a"]
//	  default_tags  = ["b"]
//	  test_template = "Keyword"
//
//	  test_timeout {
//	    value   = "1 min"
//	    message = "..."
//	  }
//	  suite_setup {
//	    keyword = "Keyword"
//	    args    = ["x"]
//	  }
//	  suite_teardown { keyword = "Keyword" }
//	  test_setup     { keyword = "Keyword" }
//	  test_teardown  { keyword = "Keyword" }
//
//	  metadata "Name" { value = "v" }
//	  library "Name" {
//	    args  = []
//	    alias = "A"
//	  }
//	  resource "file.resource" {}
//	  variables "vars.py" { args = [] }
//	}
//
//	variable "$${NAME}" { value = "x" }
//
//	keyword "Name" { ... }
//	test "Name" { ... }
//
// A keyword block takes args, documentation and return attributes plus
// timeout and teardown blocks. A test block takes documentation, tags and
// template attributes plus timeout, setup and teardown blocks. Both hold rows:
// step, comment and for blocks, which keep their relative order.
//
//	step {
//	  keyword = "Log"
//	  args    = ["x"]
//	  assign  = []
//	  comment = "# trailing comment"
//	}
//	comment { text = "# a comment-only row" }
//	for {
//	  vars  = ["$${i}"]
//	  items = ["1", "3"]
//	  range = true
//	  step { ... }
//	}
//
// Attribute values are plain HCL expressions evaluated without variables, so
// a literal "${x}" inside a string or a block label must be written as
// "$${x}".
package hclsuite
