package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Rule validates one field value and documents itself in an OpenAPI
	// schema.
	//
	// Validate receives the raw value (absent when the key is missing) and
	// returns the typed output along with failures whose paths are relative to
	// the field. A nil output means the field is left out of the result.
	//
	// Describe writes the rule into ref, the property schema of the field
	// named name; schema is the enclosing object schema.
	Rule interface {
		Validate(v Value) (any, Errors)
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// Messages overrides the messages a rule reports when its value is
	// missing or of the wrong type. Empty fields keep the defaults.
	Messages struct {
		Required    string
		InvalidType string
	}
)

func mergeMessages(msgs []Messages) Messages {
	var m Messages
	for _, o := range msgs {
		if o.Required != "" {
			m.Required = o.Required
		}
		if o.InvalidType != "" {
			m.InvalidType = o.InvalidType
		}
	}
	return m
}

// snapshot returns a copy of r that later calls to r's setters cannot reach.
// Rules without mutable state are returned as is.
func snapshot(r Rule) Rule {
	if s, ok := r.(interface{ snapshot() Rule }); ok {
		return s.snapshot()
	}
	return r
}
