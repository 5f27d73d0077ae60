package hclsuite

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// stringList evaluates a list attribute such as args or tags. A single
// primitive value is accepted as a one-element list. A null value yields nil,
// an empty list yields an empty, non-nil slice.
func stringList(attr *hcl.Attribute) ([]string, hcl.Diagnostics) {
	return evalStrings(attr, false)
}

// evalStrings evaluates an attribute into a list of strings. With allowMap,
// maps and objects are accepted too and yield "key=value" items.
func evalStrings(attr *hcl.Attribute, allowMap bool) ([]string, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if allowMap && isMapValue(val) {
		// cty iterates map and object keys sorted; the constructor keeps
		// them as written.
		if pairs, pairDiags := hcl.ExprMap(attr.Expr); !pairDiags.HasErrors() {
			values, d := pairStrings(attr.Name, pairs)
			return values, append(diags, d...)
		}
	}
	values, err := ctyToStrings(val, allowMap)
	if err != nil {
		return nil, append(diags, invalidValue(attr.Name, err, attr.Expr.Range()))
	}
	return values, diags
}

func invalidValue(name string, err error, rng hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid value",
		Detail:   fmt.Sprintf("The %q attribute %s.", name, err),
		Subject:  rng.Ptr(),
	}
}

func isMapValue(val cty.Value) bool {
	if val.IsNull() {
		return false
	}
	ty := val.Type()
	return ty.IsMapType() || ty.IsObjectType()
}

// pairStrings evaluates the pairs of a map constructor into "key=value"
// items, in source order.
func pairStrings(name string, pairs []hcl.KeyValuePair) ([]string, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	values := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		key, keyDiags := pair.Key.Value(nil)
		diags = append(diags, keyDiags...)
		val, valDiags := pair.Value.Value(nil)
		diags = append(diags, valDiags...)
		if diags.HasErrors() {
			return nil, diags
		}

		k, err := ctyToString(key)
		if err != nil {
			return nil, append(diags, invalidValue(name, err, pair.Key.Range()))
		}
		v, err := ctyToString(val)
		if err != nil {
			return nil, append(diags, invalidValue(name, err, pair.Value.Range()))
		}
		values = append(values, k+"="+v)
	}
	return values, diags
}

func ctyToStrings(val cty.Value, allowMap bool) ([]string, error) {
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, errors.New("must be a known value")
	}

	ty := val.Type()
	switch {
	case ty.IsPrimitiveType():
		s, err := ctyToString(val)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		values := make([]string, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, el := it.Element()
			s, err := ctyToString(el)
			if err != nil {
				return nil, err
			}
			values = append(values, s)
		}
		return values, nil

	case allowMap && (ty.IsMapType() || ty.IsObjectType()):
		values := []string{}
		for it := val.ElementIterator(); it.Next(); {
			key, el := it.Element()
			s, err := ctyToString(el)
			if err != nil {
				return nil, err
			}
			values = append(values, key.AsString()+"="+s)
		}
		return values, nil
	}

	if allowMap {
		return nil, errors.New("must be a string, a list or a map")
	}
	return nil, errors.New("must be a string or a list of strings")
}

// ctyToString converts a primitive value to its string form. Null becomes
// the empty string.
func ctyToString(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", nil
	}
	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", errors.New("must contain only strings, numbers or bools")
	}
	var s string
	if err := gocty.FromCtyValue(converted, &s); err != nil {
		return "", err
	}
	return s, nil
}

// stringAttr decodes an optional string attribute.
func stringAttr(attrs hcl.Attributes, name string) (*string, hcl.Diagnostics) {
	attr, ok := attrs[name]
	if !ok {
		return nil, nil
	}
	var s string
	diags := gohcl.DecodeExpression(attr.Expr, nil, &s)
	if diags.HasErrors() {
		return nil, diags
	}
	return &s, diags
}

// listAttr decodes an optional list attribute; nil means it was not written.
func listAttr(attrs hcl.Attributes, name string) ([]string, hcl.Diagnostics) {
	attr, ok := attrs[name]
	if !ok {
		return nil, nil
	}
	return stringList(attr)
}
