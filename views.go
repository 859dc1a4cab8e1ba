package formvalidation

import (
	"sort"

	"github.com/goccy/go-json"
)

// FlatErrors is the single-level view of a failure: messages grouped by
// top-level field name. Root-level messages land in FormErrors.
type FlatErrors struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`

	order []string
}

// Flat groups es by the first segment of each path.
func (es Errors) Flat() FlatErrors {
	f := FlatErrors{
		FormErrors:  []string{},
		FieldErrors: map[string][]string{},
	}
	for _, e := range es {
		if len(e.Path) == 0 {
			f.FormErrors = append(f.FormErrors, e.Message)
			continue
		}
		k := e.Path[0].String()
		if _, ok := f.FieldErrors[k]; !ok {
			f.order = append(f.order, k)
		}
		f.FieldErrors[k] = append(f.FieldErrors[k], e.Message)
	}
	return f
}

// Fields returns the field names with errors in first-failure order.
func (f FlatErrors) Fields() []string {
	if f.order != nil || len(f.FieldErrors) == 0 {
		return append([]string(nil), f.order...)
	}
	keys := make([]string, 0, len(f.FieldErrors))
	for k := range f.FieldErrors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// First returns the first message for field, the one a form shows next to
// its input.
func (f FlatErrors) First(field string) string {
	if msgs := f.FieldErrors[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Count returns the total number of messages.
func (f FlatErrors) Count() int {
	n := len(f.FormErrors)
	for _, msgs := range f.FieldErrors {
		n += len(msgs)
	}
	return n
}

// ErrorTree mirrors the nesting of the schema. Every node carries its own
// messages; children exist only for paths that failed.
type ErrorTree struct {
	Errors []string
	Fields map[string]*ErrorTree
}

func newErrorTree() *ErrorTree {
	return &ErrorTree{Errors: []string{}, Fields: map[string]*ErrorTree{}}
}

// Tree groups es by path prefix.
func (es Errors) Tree() *ErrorTree {
	root := newErrorTree()
	for _, e := range es {
		n := root
		for _, seg := range e.Path {
			k := seg.String()
			child, ok := n.Fields[k]
			if !ok {
				child = newErrorTree()
				n.Fields[k] = child
			}
			n = child
		}
		n.Errors = append(n.Errors, e.Message)
	}
	return root
}

// At returns the node at p, or nil when nothing failed there.
func (t *ErrorTree) At(p Path) *ErrorTree {
	n := t
	for _, seg := range p {
		if n == nil {
			return nil
		}
		n = n.Fields[seg.String()]
	}
	return n
}

// Count returns the number of messages in t and all of its children.
func (t *ErrorTree) Count() int {
	if t == nil {
		return 0
	}
	n := len(t.Errors)
	for _, c := range t.Fields {
		n += c.Count()
	}
	return n
}

// MarshalJSON renders t as {"_errors": [...], "<field>": {...}}.
func (t *ErrorTree) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(t.Fields)+1)
	errs := t.Errors
	if errs == nil {
		errs = []string{}
	}
	m[rootKey] = errs
	for k, c := range t.Fields {
		m[k] = c
	}
	return json.Marshal(m)
}
