// Package forms holds the registration forms of the sign-up pages, built on
// [formvalidation]. Both schemas are constructed once at package
// initialization and shared read-only.
package forms
