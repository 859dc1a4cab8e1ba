package forms

import (
	"time"

	v "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/transform"
)

// Messages shown next to the inputs of the registration forms.
const (
	MsgNameRequired      = "Please enter your name"
	MsgNameInvalid       = "The input does not look right"
	MsgNameTooShort      = "Please enter at least 2 characters"
	MsgAgeRequired       = "Please enter your age"
	MsgAgeInvalid        = "Please enter your age in half-width digits"
	MsgAgeTooSmall       = "Please enter 1 or more"
	MsgAgeNotInteger     = "Age must be a whole number"
	MsgGenderRequired    = "Please select a gender"
	MsgGenderInvalid     = "Please select one of the options"
	MsgBirthdayRequired  = "Please enter your date of birth"
	MsgBirthdayInvalid   = "Please enter a valid date"
	MsgEmailRequired     = "Please enter your email address"
	MsgConfirmRequired   = "Please enter your email address again to confirm"
	MsgEmailInvalid      = "Please enter a valid email address"
	MsgEmailMismatch     = "The email addresses do not match"
	MsgURLInvalid        = "Please enter a valid URL"
	MsgSpouseRequired    = "Please make a selection"
	MsgSpouseInvalid     = "The input format is not correct"
	MsgCommentTooShort   = "Comments must be at least 10 characters"
	MsgCommentTooLong    = "Comments must be 30 characters or fewer"
	MsgAgreementRequired = "You must agree to the terms of service"
)

// Genders are the choices of the gender select box.
var Genders = []string{"female", "male", "other"}

// Data is the typed form of a successfully validated [Registration].
type Data struct {
	FullName     string    `json:"fullName"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender"`
	Birthday     time.Time `json:"birthday"`
	Email        string    `json:"email"`
	ConfirmEmail string    `json:"confirmEmail"`
	URL          string    `json:"url,omitempty"`
	Spouse       int       `json:"spouse"`
	Comment      string    `json:"comment,omitempty"`
	Agree        bool      `json:"agree"`
}

// Registration is the single-level sign-up form. A confirmation address
// that differs from the email is reported on confirmEmail.
var Registration = profile().
	Field("email", email(MsgEmailRequired)).
	Field("confirmEmail", email(MsgConfirmRequired)).
	Refine(v.Equal(v.PathOf("email"), v.PathOf("confirmEmail"), MsgEmailMismatch)).
	MustBuild()

// Emails is the sub-form holding the address and its confirmation.
var Emails = v.NewSchema().
	Field("email", email(MsgEmailRequired)).
	Field("confirmEmail", email(MsgConfirmRequired)).
	Refine(v.Equal(v.PathOf("email"), v.PathOf("confirmEmail"), MsgEmailMismatch)).
	MustBuild()

// NestedRegistration is the sign-up form with both addresses grouped under
// "emails"; a mismatch is reported on emails.confirmEmail.
var NestedRegistration = profile().
	Field("emails", v.Object(Emails)).
	MustBuild()

func profile() *v.Builder {
	return v.NewSchema().
		Normalize(transform.Narrow("age", "spouse")).
		Field("fullName", v.String(v.Messages{Required: MsgNameRequired, InvalidType: MsgNameInvalid}).
			Min(2, MsgNameTooShort)).
		Field("age", v.Number(v.Messages{Required: MsgAgeRequired, InvalidType: MsgAgeInvalid}).
			Min(1, MsgAgeTooSmall).
			Int(MsgAgeNotInteger)).
		Field("gender", v.Enum(Genders, v.Messages{Required: MsgGenderRequired}).
			Error(MsgGenderInvalid)).
		Field("birthday", v.Date(v.Messages{Required: MsgBirthdayRequired, InvalidType: MsgBirthdayInvalid})).
		Field("url", v.Optional(v.String().URL(MsgURLInvalid))).
		Field("spouse", v.Number(v.Messages{Required: MsgSpouseRequired, InvalidType: MsgSpouseInvalid})).
		Field("comment", v.Optional(v.String().
			Min(10, MsgCommentTooShort).
			Max(30, MsgCommentTooLong))).
		Field("agree", v.Bool().True(MsgAgreementRequired))
}

func email(required string) v.Rule {
	return v.String(v.Messages{Required: required}).Email(MsgEmailInvalid)
}

// Defaults returns the initial state of the form: spouse preselected and the
// agreement box checked.
func Defaults() map[string]any {
	return map[string]any{
		"spouse": 1,
		"agree":  true,
	}
}

// NestedDefaults is like Defaults with an empty emails group.
func NestedDefaults() map[string]any {
	d := Defaults()
	d["emails"] = map[string]any{}
	return d
}

var byName = map[string]*v.Schema{
	"registration":        Registration,
	"registration-nested": NestedRegistration,
}

// Lookup returns the form registered under name.
func Lookup(name string) (*v.Schema, bool) {
	s, ok := byName[name]
	return s, ok
}

// Names lists the registered form names.
func Names() []string {
	return []string{"registration", "registration-nested"}
}
