// Package transform provides normalizers that rewrite string values of a
// [formvalidation.Record] recursively before validation. Pass them to
// [formvalidation.Builder.Normalize].
package transform
