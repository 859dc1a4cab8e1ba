package formvalidation

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// ListRule validates every element of a list with one rule. A single
// non-list value is read as a one-element list, the way a multi-select with
// one choice arrives. Element failures carry the element ordinal in their
// path; all elements are checked.
type ListRule struct {
	Messages Messages

	Elem          Rule
	MinItems      int
	MinMessage    string
	UniqueItems   bool
	UniqueMessage string
}

// Each returns a rule for a required list whose elements satisfy elem.
func Each(elem Rule, msgs ...Messages) *ListRule {
	return &ListRule{Messages: mergeMessages(msgs), Elem: elem}
}

// Min sets the minimum number of elements.
func (r *ListRule) Min(n int, msg string) *ListRule {
	r.MinItems, r.MinMessage = n, msg
	return r
}

func (r *ListRule) Validate(v Value) (any, Errors) {
	if v.IsAbsent() {
		return nil, r.Messages.required()
	}
	elems, ok := v.List()
	if !ok {
		if _, isObj := v.Object(); isObj {
			return nil, r.Messages.invalidType("must be a list")
		}
		elems = []Value{v}
	}
	if len(elems) < r.MinItems {
		return nil, failure(CodeConstraint, orDefault(r.MinMessage, fmt.Sprintf("must contain at least %d items", r.MinItems)))
	}
	out := make([]any, 0, len(elems))
	var errs Errors
	for i, e := range elems {
		val, es := r.Elem.Validate(e)
		if len(es) > 0 {
			errs = append(errs, es.prefixed(Path{Index(i)})...)
			continue
		}
		out = append(out, val)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if r.UniqueItems && hasDuplicate(out) {
		return nil, failure(CodeConstraint, orDefault(r.UniqueMessage, "must not contain duplicates"))
	}
	return out, nil
}

func (r *ListRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	describeRequired(name, schema)
	items := &openapi3.SchemaRef{Value: openapi3.NewSchema()}
	if err := r.Elem.Describe(name, openapi3.NewSchema(), items); err != nil {
		return err
	}
	ref.Value.Type = &openapi3.Types{openapi3.TypeArray}
	ref.Value.Items = items
	if r.MinItems > 0 {
		ref.Value.MinItems = uint64(r.MinItems)
	}
	ref.Value.UniqueItems = r.UniqueItems
	return nil
}

func (r *ListRule) snapshot() Rule {
	c := *r
	c.Elem = snapshot(r.Elem)
	return &c
}
