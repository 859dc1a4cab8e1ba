package openapi

import (
	"errors"
	"net/http"
	"sort"

	v "github.com/Gobd/formvalidation"
	"github.com/getkin/kin-openapi/openapi3"
)

// Response describes an HTTP response with a description and body schemas.
type Response struct {
	Desc   string
	Bodies []*v.Schema
}

// Endpoint describes a single API operation for the convenience helpers
// [Get], [Post], [Put], [Patch], and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Request     *v.Schema           // single request body schema (convenience)
	Requests    []*v.Schema         // multiple request body schemas (oneOf)
	Response    *v.Schema           // single 200 response schema (convenience)
	Responses   map[string]Response // full response map (overrides Response if both set)
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(ss ...*v.Schema) *openapi3.RequestBodyRef {
	o, err := NewRequest(ss...)
	if err != nil {
		panic(err)
	}
	return o
}

// NewRequest generates a request body accepting any of the given schemas as
// JSON or as a submitted form.
func NewRequest(ss ...*v.Schema) (*openapi3.RequestBodyRef, error) {
	if len(ss) == 0 {
		return nil, errors.New("no schemas given")
	}

	refs, err := schemaRefs(ss)
	if err != nil {
		return nil, err
	}
	body := oneOf(refs)

	return &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{
			Required: true,
			Content: openapi3.Content{
				"application/json":                  &openapi3.MediaType{Schema: body},
				"application/x-www-form-urlencoded": &openapi3.MediaType{Schema: body},
			},
		},
	}, nil
}

// NewResponseMust is like [NewResponse] but panics on error.
// Map key is status code (e.g. "200", "4xx").
func NewResponseMust(rs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(rs)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(rs map[string]Response) (*openapi3.Responses, error) {
	if len(rs) == 0 {
		return nil, errors.New("no responses given")
	}

	codes := make([]string, 0, len(rs))
	for code := range rs {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	opts := make([]openapi3.NewResponsesOption, 0, len(rs))
	for _, code := range codes {
		desc := rs[code].Desc
		resp := &openapi3.Response{Description: &desc}
		if len(rs[code].Bodies) > 0 {
			refs, err := schemaRefs(rs[code].Bodies)
			if err != nil {
				return nil, err
			}
			resp.Content = openapi3.NewContentWithJSONSchemaRef(oneOf(refs))
		}
		opts = append(opts, openapi3.WithName(code, resp))
	}

	return openapi3.NewResponses(opts...), nil
}

func schemaRefs(ss []*v.Schema) (openapi3.SchemaRefs, error) {
	refs := make(openapi3.SchemaRefs, 0, len(ss))
	for _, s := range ss {
		ref, err := s.OpenAPI()
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func oneOf(refs openapi3.SchemaRefs) *openapi3.SchemaRef {
	if len(refs) == 1 {
		return refs[0]
	}
	return &openapi3.SchemaRef{Value: &openapi3.Schema{OneOf: refs}}
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath adds an operation to the OpenAPI spec at the given path and method.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}

	switch method {
	case http.MethodGet:
		p.Get = op
	case http.MethodPost:
		p.Post = op
	case http.MethodPut:
		p.Put = op
	case http.MethodPatch:
		p.Patch = op
	case http.MethodDelete:
		p.Delete = op
	}

	s.Paths.Set(path, p)
}

// addEndpoint builds an [openapi3.Operation] from ep and registers it at path+method.
func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	// Request body
	switch {
	case len(ep.Requests) > 0:
		op.RequestBody = NewRequestMust(ep.Requests...)
	case ep.Request != nil:
		op.RequestBody = NewRequestMust(ep.Request)
	}

	// Responses
	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []*v.Schema{ep.Response}},
		}
	}
	if responses != nil {
		op.Responses = NewResponseMust(responses)
	} else {
		op.Responses = openapi3.NewResponses()
	}
	if op.RequestBody != nil && op.Responses.Value("400") == nil {
		desc := "Validation failed"
		op.Responses.Set("400", &openapi3.ResponseRef{Value: &openapi3.Response{
			Description: &desc,
			Content:     openapi3.NewContentWithJSONSchemaRef(ErrorBody()),
		}})
	}

	AddPath(path, method, doc, op)
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}
