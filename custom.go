package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type custom struct {
	f    func(Value) (any, error)
	desc string
}

// Custom returns a rule that uses f for validation and desc for
// documentation. A plain error from f becomes a constraint violation with
// the error text as message; an [Errors] value is kept as is.
func Custom(f func(Value) (any, error), desc string) Rule {
	return custom{
		f:    f,
		desc: desc,
	}
}

func (r custom) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

func (r custom) Validate(v Value) (any, Errors) {
	out, err := r.f(v)
	if err == nil {
		return out, nil
	}
	if es, ok := AsErrors(err); ok {
		return nil, es
	}
	return nil, failure(CodeConstraint, err.Error())
}
