package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func (m Messages) required() Errors {
	msg := m.Required
	if msg == "" {
		msg = validation.ErrRequired.Message()
	}
	return failure(CodeRequired, msg)
}

func (m Messages) invalidType(fallback string) Errors {
	msg := m.InvalidType
	if msg == "" {
		msg = fallback
	}
	return failure(CodeInvalidType, msg)
}

func describeRequired(name string, schema *openapi3.Schema) {
	if schema == nil {
		return
	}
	for _, n := range schema.Required {
		if n == name {
			return
		}
	}
	schema.Required = append(schema.Required, name)
}

type optionalRule struct {
	rule Rule
}

// Optional lets a field be absent. An absent value, or an empty string,
// passes without running rule and is left out of the output.
func Optional(rule Rule) Rule {
	return &optionalRule{rule: rule}
}

func (r *optionalRule) Validate(v Value) (any, Errors) {
	if s, ok := v.Str(); v.IsAbsent() || (ok && s == "") {
		return nil, nil
	}
	return r.rule.Validate(v)
}

// Describe documents the wrapped rule without marking the field required.
func (r *optionalRule) Describe(name string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	return r.rule.Describe(name, openapi3.NewSchema(), ref)
}

func (r *optionalRule) snapshot() Rule {
	return &optionalRule{rule: snapshot(r.rule)}
}
