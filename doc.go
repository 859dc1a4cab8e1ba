// Package formvalidation validates untyped form records against declarative
// schemas and reports every failure by field path.
//
// Define a schema once, at startup:
//
//	var signup = v.NewSchema().
//	    Field("name", v.String(v.Messages{Required: "enter your name"}).Min(2, "at least 2 characters")).
//	    Field("age", v.Number().Min(1, "at least 1").Int("whole years only")).
//	    Field("email", v.String().Email("not an email address")).
//	    Field("confirmEmail", v.String().Email("not an email address")).
//	    Field("url", v.Optional(v.String().URL("not a URL"))).
//	    Field("agree", v.Bool().True("you must agree")).
//	    Refine(v.Equal(v.PathOf("email"), v.PathOf("confirmEmail"), "addresses do not match")).
//	    MustBuild()
//
// Then validate as often as needed, from any goroutine:
//
//	res := signup.SafeValidate(v.RecordFrom(input))
//	if !res.OK() {
//	    flat := res.Errors.Flat()  // fieldErrors keyed by top-level field
//	    tree := res.Errors.Tree()  // nested nodes, each with _errors
//	}
//
// Raw values are coerced per rule before checking: empty strings are
// absent, all-digit strings feed number rules, checkbox fields read absent
// as false. Cross-field refinements run only when the fields they read
// validated cleanly, and may report at any path.
//
// Sub-packages:
//   - openapi – OpenAPI documents for endpoints that accept a schema
//   - transform – input normalizers for [Builder.Normalize]
//   - forms – the registration forms built on this package
package formvalidation
