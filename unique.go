package formvalidation

import (
	"reflect"
)

// Unique requires the typed elements of the list to be distinct, the way a
// multi-select must not repeat a choice. A repeat is reported on the list
// itself, after every element has passed.
func (r *ListRule) Unique(msg string) *ListRule {
	r.UniqueItems, r.UniqueMessage = true, msg
	return r
}

func hasDuplicate(elems []any) bool {
	for i := 1; i < len(elems); i++ {
		for j := 0; j < i; j++ {
			if reflect.DeepEqual(elems[i], elems[j]) {
				return true
			}
		}
	}
	return false
}
