package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// EnumRule requires a string from a fixed set. A value outside the set
// fails with Message regardless of which values are allowed.
type EnumRule struct {
	Messages Messages

	Values  []string
	Message string
}

// Enum returns a rule for a required field limited to values.
func Enum(values []string, msgs ...Messages) *EnumRule {
	return &EnumRule{
		Messages: mergeMessages(msgs),
		Values:   append([]string(nil), values...),
	}
}

// Error sets the message reported for a value outside the set.
func (r *EnumRule) Error(msg string) *EnumRule {
	r.Message = msg
	return r
}

func (r *EnumRule) Validate(v Value) (any, Errors) {
	v = Coerce(v, PrimitiveString)
	if v.IsAbsent() {
		return nil, r.Messages.required()
	}
	s, ok := v.Str()
	if !ok {
		return nil, r.Messages.invalidType("must be a string")
	}
	allowed := make([]any, len(r.Values))
	for i := range r.Values {
		allowed[i] = r.Values[i]
	}
	if err := validation.In(allowed...).Error(orDefault(r.Message, "must be one of the allowed values")).Validate(s); err != nil {
		return nil, failure(CodeConstraint, err.Error())
	}
	return s, nil
}

func (r *EnumRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	describeRequired(name, schema)
	ref.Value.Type = &openapi3.Types{openapi3.TypeString}
	ref.Value.Enum = make([]any, len(r.Values))
	for i := range r.Values {
		ref.Value.Enum[i] = r.Values[i]
	}
	return nil
}

func (r *EnumRule) snapshot() Rule {
	c := *r
	c.Values = append([]string(nil), r.Values...)
	return &c
}
