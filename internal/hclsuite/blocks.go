package hclsuite

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// findUniqueBlock returns the single block of the given type, or nil when
// there is none. Every repeated block is reported against the first one, so
// the diagnostic names both places.
func findUniqueBlock(blocks hcl.Blocks, blockType string) (*hcl.Block, hcl.Diagnostics) {
	var first *hcl.Block
	var diags hcl.Diagnostics

	for _, block := range blocks {
		if block.Type != blockType {
			continue
		}
		if first == nil {
			first = block
			continue
		}
		span := hcl.RangeBetween(first.DefRange, block.DefRange)
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  fmt.Sprintf("Duplicate %q block", blockType),
			Detail:   fmt.Sprintf("Only one %q block is allowed here; first declared at %s.", blockType, first.DefRange),
			Subject:  block.DefRange.Ptr(),
			Context:  &span,
		})
	}

	return first, diags
}
