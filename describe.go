package formvalidation

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// annotated wraps a rule with documentation that does not affect validation.
type annotated struct {
	rule       Rule
	desc       string
	example    any
	deprecated bool
}

// Describe wraps rule and appends desc to the schema description.
func Describe(rule Rule, desc string) Rule {
	return &annotated{rule: rule, desc: desc}
}

// Example wraps rule and sets the schema example value.
func Example(rule Rule, ex any) Rule {
	return &annotated{rule: rule, example: ex}
}

// Deprecate wraps rule and marks the field as deprecated in the schema.
func Deprecate(rule Rule) Rule {
	return &annotated{rule: rule, deprecated: true}
}

func (r *annotated) Validate(v Value) (any, Errors) {
	return r.rule.Validate(v)
}

func (r *annotated) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if err := r.rule.Describe(name, schema, ref); err != nil {
		return err
	}
	if r.desc != "" {
		appendDescription(ref, r.desc)
	}
	if r.example != nil {
		ref.Value.Example = r.example
	}
	if r.deprecated {
		ref.Value.Deprecated = true
	}
	return nil
}

func (r *annotated) snapshot() Rule {
	c := *r
	c.rule = snapshot(r.rule)
	return &c
}

func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}
