package formvalidation

import (
	"sort"
)

// UnknownKeys returns the keys of in that s declares no field for, sorted.
// Keys holding an absent value are not reported.
//
// Use in tests to catch inputs that drift from the schema:
//
//	assert.Empty(t, v.UnknownKeys(schema, record))
func UnknownKeys(s *Schema, in Record) []string {
	declared := make(map[string]bool, len(s.fields))
	for _, f := range s.fields {
		declared[f.name] = true
	}
	var unknown []string
	for k, val := range in {
		if declared[k] || val.IsAbsent() {
			continue
		}
		unknown = append(unknown, k)
	}
	sort.Strings(unknown)
	return unknown
}
