package formvalidation

import (
	"errors"
	"fmt"
	"slices"
)

type field struct {
	name string
	rule Rule
}

// Builder assembles a [Schema]. It is not safe for concurrent use; the
// Schema it builds is.
type Builder struct {
	fields      []field
	refinements []Refinement
	normalizers []func(Record)
	strict      bool
	strictMsg   string
	errs        []error
}

// NewSchema starts a schema definition.
func NewSchema() *Builder {
	return &Builder{}
}

// Field declares a field. Fields are validated and reported in declaration
// order. The name "_errors" is reserved for form-level messages in the tree
// view.
func (b *Builder) Field(name string, rule Rule) *Builder {
	switch {
	case name == "":
		b.errs = append(b.errs, errors.New("field name must not be empty"))
	case name == rootKey:
		b.errs = append(b.errs, fmt.Errorf("field name %q is reserved for form-level errors", name))
	case rule == nil:
		b.errs = append(b.errs, fmt.Errorf("field %q has no rule", name))
	default:
		for _, f := range b.fields {
			if f.name == name {
				b.errs = append(b.errs, fmt.Errorf("field %q declared twice", name))
				return b
			}
		}
		b.fields = append(b.fields, field{name: name, rule: rule})
	}
	return b
}

// Refine adds cross-field refinements, run after every field of this schema
// has been validated.
func (b *Builder) Refine(rs ...Refinement) *Builder {
	b.refinements = append(b.refinements, rs...)
	return b
}

// Normalize adds functions that rewrite the input before coercion. They
// receive a deep copy; the caller's record is never modified.
func (b *Builder) Normalize(fns ...func(Record)) *Builder {
	b.normalizers = append(b.normalizers, fns...)
	return b
}

// Strict reports input keys that no field declares, one constraint
// violation per key with message msg. By default such keys are ignored.
func (b *Builder) Strict(msg string) *Builder {
	b.strict, b.strictMsg = true, orDefault(msg, "unknown field")
	return b
}

// Build checks the definition and returns the immutable schema. Rules are
// copied, so changing a rule after Build does not affect the schema.
func (b *Builder) Build() (*Schema, error) {
	errs := append([]error(nil), b.errs...)
	declared := make(map[string]bool, len(b.fields))
	fields := make([]field, len(b.fields))
	for i, f := range b.fields {
		declared[f.name] = true
		fields[i] = field{name: f.name, rule: snapshot(f.rule)}
	}
	for i, r := range b.refinements {
		if err := r.check(declared); err != nil {
			errs = append(errs, fmt.Errorf("refinement %d: %w", i, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &Schema{
		fields:      fields,
		refinements: append([]Refinement(nil), b.refinements...),
		normalizers: slices.Clone(b.normalizers),
		strict:      b.strict,
		strictMsg:   b.strictMsg,
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Schema is an immutable record description: ordered field rules plus
// cross-field refinements. It is safe for concurrent use.
type Schema struct {
	fields      []field
	refinements []Refinement
	normalizers []func(Record)
	strict      bool
	strictMsg   string
}

// Fields returns the declared field names in order.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Validate checks in against s. On success it returns the typed record;
// otherwise the error is always [Errors].
func (s *Schema) Validate(in Record) (map[string]any, error) {
	out, errs := s.validate(in)
	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

// SafeValidate is like Validate but returns both outcomes in a [Result].
func (s *Schema) SafeValidate(in Record) Result {
	out, errs := s.validate(in)
	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{Value: out}
}

func (s *Schema) validate(in Record) (map[string]any, Errors) {
	if len(s.normalizers) > 0 {
		in = in.Clone()
		if in == nil {
			in = Record{}
		}
		for _, n := range s.normalizers {
			n(in)
		}
	}

	out := make(map[string]any, len(s.fields))
	var errs Errors
	for _, f := range s.fields {
		val, fieldErrs := f.rule.Validate(in[f.name])
		if len(fieldErrs) > 0 {
			errs = append(errs, fieldErrs.prefixed(PathOf(f.name))...)
			continue
		}
		if val != nil {
			out[f.name] = val
		}
	}
	if s.strict {
		for _, k := range UnknownKeys(s, in) {
			errs = append(errs, FieldError{Path: PathOf(k), Code: CodeConstraint, Message: s.strictMsg})
		}
	}
	fieldErrs := errs
	for _, r := range s.refinements {
		if e, failed := r.apply(out, fieldErrs); failed {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}
