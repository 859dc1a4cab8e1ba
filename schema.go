package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI renders s as an OpenAPI 3 object schema. Every field becomes a
// property described by its rule; fields not wrapped in [Optional] are
// listed as required. Refinements are summarized in the description.
func (s *Schema) OpenAPI() (*openapi3.SchemaRef, error) {
	schema := openapi3.NewObjectSchema()
	schema.Properties = openapi3.Schemas{}
	for _, f := range s.fields {
		ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}
		if err := f.rule.Describe(f.name, schema, ref); err != nil {
			return nil, err
		}
		schema.Properties[f.name] = ref
	}
	ref := &openapi3.SchemaRef{Value: schema}
	for _, r := range s.refinements {
		appendDescription(ref, r.describe())
	}
	if s.strict {
		schema.AdditionalProperties = openapi3.AdditionalProperties{Has: new(bool)}
	}
	return ref, nil
}

// describe renders r as "emails.confirmEmail: Email addresses do not match."
func (r Refinement) describe() string {
	desc := r.Message
	if len(r.Target) > 0 {
		desc = r.Target.String() + ": " + desc
	}
	if n := len(desc); n > 0 && desc[n-1] != '.' {
		desc += "."
	}
	return desc
}
