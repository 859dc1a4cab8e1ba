package formvalidation

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Code classifies a [FieldError].
type Code string

const (
	// CodeRequired marks a mandatory field that had no value.
	CodeRequired Code = "required"
	// CodeInvalidType marks a present value that could not be read as the
	// declared primitive.
	CodeInvalidType Code = "invalid_type"
	// CodeConstraint marks a well-typed value outside its declared bounds.
	CodeConstraint Code = "constraint"
	// CodeCrossField marks a failed refinement over several fields.
	CodeCrossField Code = "cross_field"
)

// rootKey names root-level errors in the ozzo map form and the tree view.
const rootKey = "_errors"

// ValidationErrors is the ozzo-validation map of field names to errors.
// [Errors.Map] projects a failure into this form.
type ValidationErrors = validation.Errors

// FieldError is one validation failure at a path.
type FieldError struct {
	Path    Path
	Code    Code
	Message string
}

func (e FieldError) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return e.Path.String() + ": " + e.Message
}

// Errors is the ordered set of failures produced by one validation call.
// Several entries may share a path.
type Errors []FieldError

// Error renders the failures the way ozzo-validation renders its error map:
// keys sorted, messages for one path joined by "; ".
func (es Errors) Error() string {
	if len(es) == 0 {
		return ""
	}
	return es.Map().Error()
}

// Map projects es into an ozzo [ValidationErrors] keyed by [Path.String].
// Root-level messages are stored under "_errors".
func (es Errors) Map() ValidationErrors {
	msgs := map[string][]string{}
	var order []string
	for _, e := range es {
		k := e.Path.String()
		if k == "" {
			k = rootKey
		}
		if _, ok := msgs[k]; !ok {
			order = append(order, k)
		}
		msgs[k] = append(msgs[k], e.Message)
	}
	out := make(ValidationErrors, len(order))
	for _, k := range order {
		out[k] = errors.New(strings.Join(msgs[k], "; "))
	}
	return out
}

// At returns every message recorded at exactly p, in order.
func (es Errors) At(p Path) []string {
	var out []string
	for _, e := range es {
		if e.Path.Equal(p) {
			out = append(out, e.Message)
		}
	}
	return out
}

// Has reports whether any failure is recorded at exactly p.
func (es Errors) Has(p Path) bool {
	for _, e := range es {
		if e.Path.Equal(p) {
			return true
		}
	}
	return false
}

// Codes returns the codes recorded at exactly p, in order.
func (es Errors) Codes(p Path) []Code {
	var out []Code
	for _, e := range es {
		if e.Path.Equal(p) {
			out = append(out, e.Code)
		}
	}
	return out
}

// Under reports whether any failure is recorded at p or below it.
func (es Errors) Under(p Path) bool {
	for _, e := range es {
		if e.Path.HasPrefix(p) {
			return true
		}
	}
	return false
}

// prefixed returns a copy of es with p prepended to every path.
func (es Errors) prefixed(p Path) Errors {
	out := make(Errors, len(es))
	for i, e := range es {
		e.Path = p.Concat(e.Path)
		out[i] = e
	}
	return out
}

// AsErrors extracts [Errors] from err using errors.As.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var es Errors
	if errors.As(err, &es) {
		return es, true
	}
	return nil, false
}

func failure(code Code, msg string) Errors {
	return Errors{{Code: code, Message: msg}}
}
