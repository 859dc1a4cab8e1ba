package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// ErrorBody returns the schema of a flat validation failure:
// {"formErrors": [string], "fieldErrors": {field: [string]}}.
func ErrorBody() *openapi3.SchemaRef {
	messages := openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())
	body := openapi3.NewObjectSchema().
		WithProperty("formErrors", messages).
		WithProperty("fieldErrors", openapi3.NewObjectSchema().WithAdditionalProperties(messages))
	body.Required = []string{"formErrors", "fieldErrors"}
	return body.NewRef()
}
