package formvalidation

import (
	"errors"
	"slices"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultDateLayouts are tried in order when a [DateRule] has no layouts.
var DefaultDateLayouts = []string{time.DateOnly, time.RFC3339}

// DateRule validates that a string is a calendar date in one of Layouts,
// or in RFC 3339. An unparsable value is a type mismatch; a parsed date
// outside [Earliest, Latest] is a constraint violation. The output is a
// time.Time.
type DateRule struct {
	Messages Messages

	Layouts      []string
	Earliest     time.Time
	Latest       time.Time
	RangeMessage string
}

// Date returns a rule for a required date field.
func Date(msgs ...Messages) *DateRule {
	return &DateRule{Messages: mergeMessages(msgs)}
}

// Layout replaces the accepted layouts.
func (r *DateRule) Layout(layouts ...string) *DateRule {
	r.Layouts = append([]string(nil), layouts...)
	return r
}

// Min sets the earliest allowed date.
func (r *DateRule) Min(t time.Time) *DateRule {
	r.Earliest = t
	return r
}

// Max sets the latest allowed date.
func (r *DateRule) Max(t time.Time) *DateRule {
	r.Latest = t
	return r
}

// RangeError sets the message reported for a date outside the range.
func (r *DateRule) RangeError(msg string) *DateRule {
	r.RangeMessage = msg
	return r
}

func (r *DateRule) layouts() []string {
	if len(r.Layouts) > 0 {
		return r.Layouts
	}
	return DefaultDateLayouts
}

// parseLayouts adds RFC 3339, the form a validated date is rendered in by
// [FromAny], so validated output always validates again.
func (r *DateRule) parseLayouts() []string {
	ls := r.layouts()
	if slices.Contains(ls, time.RFC3339) {
		return ls
	}
	return append(slices.Clip(ls), time.RFC3339)
}

func (r *DateRule) Validate(v Value) (any, Errors) {
	v = Coerce(v, PrimitiveDate)
	if v.IsAbsent() {
		return nil, r.Messages.required()
	}
	s, ok := v.Str()
	if !ok {
		return nil, r.Messages.invalidType(validation.ErrDateInvalid.Message())
	}
	for _, layout := range r.parseLayouts() {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		rule := validation.Date(layout).Min(r.Earliest).Max(r.Latest)
		if r.RangeMessage != "" {
			rule = rule.RangeError(r.RangeMessage)
		}
		if err := rule.Validate(s); err != nil {
			var ve validation.Error
			if errors.As(err, &ve) && ve.Code() == validation.ErrDateOutOfRange.Code() {
				return nil, failure(CodeConstraint, ve.Error())
			}
			continue
		}
		return t, nil
	}
	return nil, r.Messages.invalidType(validation.ErrDateInvalid.Message())
}

// Describe implements [Rule] by setting the format and date range on the schema.
func (r *DateRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	describeRequired(name, schema)
	ref.Value.Type = &openapi3.Types{openapi3.TypeString}
	if ls := r.layouts(); len(ls) == 1 && ls[0] == time.RFC3339 {
		ref.Value.Format = "date-time"
	} else {
		ref.Value.Format = "date"
	}
	if !r.Earliest.IsZero() {
		appendDescription(ref, ">= "+r.Earliest.Format(time.DateOnly))
	}
	if !r.Latest.IsZero() {
		appendDescription(ref, "<= "+r.Latest.Format(time.DateOnly))
	}
	return nil
}

func (r *DateRule) snapshot() Rule {
	c := *r
	c.Layouts = append([]string(nil), r.Layouts...)
	return &c
}
