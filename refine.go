package formvalidation

import (
	"errors"
	"fmt"
	"reflect"
)

// Refinement is a check over several already validated fields. It only
// runs when none of the fields it reads failed; when Check returns false it
// reports one error with Message at Target. Target need not be one of the
// read paths. Paths are relative to the schema declaring the refinement.
type Refinement struct {
	Reads   []Path
	Target  Path
	Message string
	Check   func(values []any) bool
}

// Refine builds a [Refinement]. check receives the typed values at reads,
// in order; a path with no value yields nil.
func Refine(reads []Path, target Path, message string, check func(values []any) bool) Refinement {
	return Refinement{Reads: reads, Target: target, Message: message, Check: check}
}

// Equal requires the values at a and b to be equal and reports a mismatch
// at b, the confirmation field.
func Equal(a, b Path, message string) Refinement {
	return Refine([]Path{a, b}, b, message, func(values []any) bool {
		return reflect.DeepEqual(values[0], values[1])
	})
}

func (r Refinement) check(declared map[string]bool) error {
	if r.Check == nil {
		return errors.New("no check function")
	}
	if len(r.Reads) == 0 {
		return errors.New("no read paths")
	}
	for _, p := range r.Reads {
		if len(p) == 0 || p[0].IsIndex() || !declared[p[0].Key()] {
			return fmt.Errorf("read path %q does not start at a declared field", p.String())
		}
	}
	return nil
}

// apply runs r against the output of a field pass. It reports false when the
// refinement held or was skipped.
func (r Refinement) apply(out map[string]any, errs Errors) (FieldError, bool) {
	for _, e := range errs {
		for _, p := range r.Reads {
			if e.Path.Overlaps(p) {
				return FieldError{}, false
			}
		}
	}
	values := make([]any, len(r.Reads))
	for i, p := range r.Reads {
		values[i] = lookup(out, p)
	}
	if r.Check(values) {
		return FieldError{}, false
	}
	return FieldError{
		Path:    append(Path(nil), r.Target...),
		Code:    CodeCrossField,
		Message: r.Message,
	}, true
}

// lookup walks typed output produced by the composer.
func lookup(out map[string]any, p Path) any {
	var cur any = out
	for _, seg := range p {
		switch c := cur.(type) {
		case map[string]any:
			if seg.IsIndex() {
				return nil
			}
			cur = c[seg.Key()]
		case []any:
			if !seg.IsIndex() || seg.Index() < 0 || seg.Index() >= len(c) {
				return nil
			}
			cur = c[seg.Index()]
		default:
			return nil
		}
	}
	return cur
}
