package formvalidation

import (
	"fmt"
	"math"

	"github.com/getkin/kin-openapi/openapi3"
)

// NumberRule validates a numeric field. All-digit strings are coerced to
// numbers first. Checks run in order: minimum, maximum, integrality. Only
// the first failure is reported.
//
// Bounds are checked here rather than with ozzo's threshold rules, which
// treat zero as an empty value and skip it.
type NumberRule struct {
	Messages Messages

	Minimum        *float64
	MinimumMessage string
	Maximum        *float64
	MaximumMessage string
	Integer        bool
	IntegerMessage string
}

// Number returns a rule for a required number field.
func Number(msgs ...Messages) *NumberRule {
	return &NumberRule{Messages: mergeMessages(msgs)}
}

// Min sets the inclusive lower bound.
func (r *NumberRule) Min(f float64, msg string) *NumberRule {
	r.Minimum, r.MinimumMessage = &f, msg
	return r
}

// Max sets the inclusive upper bound.
func (r *NumberRule) Max(f float64, msg string) *NumberRule {
	r.Maximum, r.MaximumMessage = &f, msg
	return r
}

// Int requires a whole number.
func (r *NumberRule) Int(msg string) *NumberRule {
	r.Integer, r.IntegerMessage = true, msg
	return r
}

func (r *NumberRule) Validate(v Value) (any, Errors) {
	v = Coerce(v, PrimitiveNumber)
	if v.IsAbsent() {
		return nil, r.Messages.required()
	}
	f, ok := v.Number()
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, r.Messages.invalidType("must be a number")
	}
	if r.Minimum != nil && f < *r.Minimum {
		return nil, failure(CodeConstraint, orDefault(r.MinimumMessage, fmt.Sprintf("must be no less than %v", *r.Minimum)))
	}
	if r.Maximum != nil && f > *r.Maximum {
		return nil, failure(CodeConstraint, orDefault(r.MaximumMessage, fmt.Sprintf("must be no greater than %v", *r.Maximum)))
	}
	if r.Integer && f != math.Trunc(f) {
		return nil, failure(CodeConstraint, orDefault(r.IntegerMessage, "must be an integer"))
	}
	return f, nil
}

func (r *NumberRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	describeRequired(name, schema)
	if r.Integer {
		ref.Value.Type = &openapi3.Types{openapi3.TypeInteger}
	} else {
		ref.Value.Type = &openapi3.Types{openapi3.TypeNumber}
	}
	if r.Minimum != nil {
		f := *r.Minimum
		ref.Value.Min = &f
	}
	if r.Maximum != nil {
		f := *r.Maximum
		ref.Value.Max = &f
	}
	return nil
}

func (r *NumberRule) snapshot() Rule {
	c := *r
	return &c
}
