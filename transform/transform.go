package transform

import (
	"strings"

	v "github.com/Gobd/formvalidation"
	"golang.org/x/text/width"
)

// StringFunc returns a normalizer applying f to every string value,
// including strings inside nested records and lists. With keys given, only
// those top-level fields are touched.
func StringFunc(f func(string) string, keys ...string) func(v.Record) {
	return func(r v.Record) {
		if len(keys) == 0 {
			stringFunc(r, f)
			return
		}
		for _, k := range keys {
			if val, ok := r[k]; ok {
				r[k] = mapValue(val, f)
			}
		}
	}
}

// TrimSpace runs [strings.TrimSpace] on string values.
func TrimSpace(keys ...string) func(v.Record) {
	return StringFunc(strings.TrimSpace, keys...)
}

// ToLower runs [strings.ToLower] on string values.
func ToLower(keys ...string) func(v.Record) {
	return StringFunc(strings.ToLower, keys...)
}

// Narrow folds full-width characters to their half-width forms, so "２０"
// reaches a number rule as "20" and "ａ＠ｂ．ｃｏ" as "a@b.co".
func Narrow(keys ...string) func(v.Record) {
	return StringFunc(width.Narrow.String, keys...)
}

// Multi runs all given normalizers in order.
func Multi(fns ...func(v.Record)) func(v.Record) {
	return func(r v.Record) {
		for _, f := range fns {
			f(r)
		}
	}
}

func stringFunc(r v.Record, f func(string) string) {
	for k, val := range r {
		r[k] = mapValue(val, f)
	}
}

func mapValue(val v.Value, f func(string) string) v.Value {
	switch val.Kind() {
	case v.KindString:
		s, _ := val.Str()
		return v.StringValue(f(s))
	case v.KindObject:
		obj, _ := val.Object()
		stringFunc(obj, f)
		return val
	case v.KindList:
		elems, _ := val.List()
		out := make([]v.Value, len(elems))
		for i := range elems {
			out[i] = mapValue(elems[i], f)
		}
		return v.ListValue(out...)
	}
	return val
}
