package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// BoolRule reads a checkbox-style field: checked is true, unchecked or
// absent is false. It never reports a missing value. With RequireTrue set
// (agreement boxes) anything but true fails.
type BoolRule struct {
	RequireTrue bool
	TrueMessage string
}

// Bool returns a checkbox rule.
func Bool() *BoolRule {
	return &BoolRule{}
}

// True requires the box to be checked.
func (r *BoolRule) True(msg string) *BoolRule {
	r.RequireTrue, r.TrueMessage = true, msg
	return r
}

func (r *BoolRule) Validate(v Value) (any, Errors) {
	b, _ := Coerce(v, PrimitiveBool).Bool()
	if r.RequireTrue && !b {
		return nil, failure(CodeConstraint, orDefault(r.TrueMessage, "must be true"))
	}
	return b, nil
}

func (r *BoolRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Type = &openapi3.Types{openapi3.TypeBoolean}
	if r.RequireTrue {
		describeRequired(name, schema)
		ref.Value.Enum = []any{true}
	}
	return nil
}

func (r *BoolRule) snapshot() Rule {
	c := *r
	return &c
}
