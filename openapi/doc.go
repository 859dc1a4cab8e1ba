// Package openapi builds OpenAPI 3 documents for endpoints that accept
// records validated by a [formvalidation.Schema].
//
// Use [DocBase] to create a base document and register endpoints with
// [Get], [Post], [Put], [Patch], or [Delete]:
//
//	doc := openapi.DocBase("signup", "Sign-up API", "1.0")
//	openapi.Post(doc, "/register", "register", openapi.Endpoint{
//	    Request: forms.Registration,
//	})
//
// Every endpoint with a request body also documents a 400 response carrying
// the flat error view.
package openapi
