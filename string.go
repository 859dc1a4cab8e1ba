package formvalidation

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Format is a named string grammar checked by [StringRule].
type Format string

const (
	FormatEmail Format = "email"
	FormatURL   Format = "uri"
)

// StringRule validates a string field. Checks run in a fixed order: minimum
// length, maximum length, format, pattern. Only the first failure is
// reported. Lengths count runes; zero means unbounded.
type StringRule struct {
	Messages Messages

	MinLength        int
	MinLengthMessage string
	MaxLength        int
	MaxLengthMessage string
	Format           Format
	FormatMessage    string
	Pattern          *regexp.Regexp
	PatternMessage   string
}

// String returns a rule for a required string field.
func String(msgs ...Messages) *StringRule {
	return &StringRule{Messages: mergeMessages(msgs)}
}

// Min sets the minimum rune length.
func (r *StringRule) Min(n int, msg string) *StringRule {
	r.MinLength, r.MinLengthMessage = n, msg
	return r
}

// Max sets the maximum rune length.
func (r *StringRule) Max(n int, msg string) *StringRule {
	r.MaxLength, r.MaxLengthMessage = n, msg
	return r
}

// Email requires local-part@domain with a dot in the domain.
func (r *StringRule) Email(msg string) *StringRule {
	r.Format, r.FormatMessage = FormatEmail, msg
	return r
}

// URL requires an absolute URL with a scheme and a host.
func (r *StringRule) URL(msg string) *StringRule {
	r.Format, r.FormatMessage = FormatURL, msg
	return r
}

// Matches requires the whole value to match re.
func (r *StringRule) Matches(re *regexp.Regexp, msg string) *StringRule {
	r.Pattern, r.PatternMessage = re, msg
	return r
}

func (r *StringRule) Validate(v Value) (any, Errors) {
	v = Coerce(v, PrimitiveString)
	if v.IsAbsent() {
		return nil, r.Messages.required()
	}
	s, ok := v.Str()
	if !ok {
		return nil, r.Messages.invalidType("must be a string")
	}
	if msg := r.check(s); msg != "" {
		return nil, failure(CodeConstraint, msg)
	}
	return s, nil
}

func (r *StringRule) check(s string) string {
	if r.MinLength > 0 {
		rule := validation.RuneLength(r.MinLength, 0)
		if r.MinLengthMessage != "" {
			rule = rule.Error(r.MinLengthMessage)
		}
		if err := rule.Validate(s); err != nil {
			return err.Error()
		}
	}
	if r.MaxLength > 0 {
		rule := validation.RuneLength(0, r.MaxLength)
		if r.MaxLengthMessage != "" {
			rule = rule.Error(r.MaxLengthMessage)
		}
		if err := rule.Validate(s); err != nil {
			return err.Error()
		}
	}
	switch r.Format {
	case FormatEmail:
		if !isEmail(s) {
			return orDefault(r.FormatMessage, is.ErrEmail.Message())
		}
	case FormatURL:
		if !isURL(s) {
			return orDefault(r.FormatMessage, is.ErrURL.Message())
		}
	}
	if r.Pattern != nil && !r.Pattern.MatchString(s) {
		return orDefault(r.PatternMessage, validation.ErrMatchInvalid.Message())
	}
	return ""
}

func isEmail(s string) bool {
	if err := is.EmailFormat.Validate(s); err != nil {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}

func isURL(s string) bool {
	if !govalidator.IsRequestURL(s) {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func orDefault(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}

func (r *StringRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	describeRequired(name, schema)
	ref.Value.Type = &openapi3.Types{openapi3.TypeString}
	if r.MinLength > 0 {
		ref.Value.MinLength = uint64(r.MinLength)
	}
	if r.MaxLength > 0 {
		m := uint64(r.MaxLength)
		ref.Value.MaxLength = &m
	}
	if r.Format != "" {
		ref.Value.Format = string(r.Format)
	}
	if r.Pattern != nil {
		ref.Value.Pattern = r.Pattern.String()
	}
	return nil
}


func (r *StringRule) snapshot() Rule {
	c := *r
	return &c
}
