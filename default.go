package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type defaulter struct {
	rule Rule
	a    any
}

// Default substitutes a when the value is absent, then validates the result
// with rule. The default is also written to the schema.
func Default(rule Rule, a any) Rule {
	return &defaulter{rule: rule, a: a}
}

func (r *defaulter) Validate(v Value) (any, Errors) {
	if s, ok := v.Str(); v.IsAbsent() || (ok && s == "") {
		v = FromAny(r.a)
	}
	return r.rule.Validate(v)
}

func (r *defaulter) Describe(name string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if err := r.rule.Describe(name, openapi3.NewSchema(), ref); err != nil {
		return err
	}
	ref.Value.Default = r.a
	return nil
}

func (r *defaulter) snapshot() Rule {
	return &defaulter{rule: snapshot(r.rule), a: r.a}
}
