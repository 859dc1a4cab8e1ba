package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// ObjectRule validates a nested record against a child [Schema]. Child
// failures are reported under the field's path.
type ObjectRule struct {
	Messages Messages
	Schema   *Schema
}

// Object returns a rule for a required nested record.
func Object(s *Schema, msgs ...Messages) *ObjectRule {
	return &ObjectRule{Messages: mergeMessages(msgs), Schema: s}
}

func (r *ObjectRule) Validate(v Value) (any, Errors) {
	if v.IsAbsent() {
		return nil, r.Messages.required()
	}
	rec, ok := v.Object()
	if !ok {
		return nil, r.Messages.invalidType("must be an object")
	}
	return r.Schema.validate(rec)
}

func (r *ObjectRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	describeRequired(name, schema)
	child, err := r.Schema.OpenAPI()
	if err != nil {
		return err
	}
	desc := ref.Value.Description
	*ref.Value = *child.Value
	if desc != "" {
		appendDescription(ref, desc)
	}
	return nil
}

func (r *ObjectRule) snapshot() Rule {
	c := *r
	return &c
}
