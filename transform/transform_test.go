package transform_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	v "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/transform"
)

func record() v.Record {
	return v.RecordFrom(map[string]any{
		"name":   "  Taro  ",
		"email":  " TARO@Example.COM ",
		"age":    "２０",
		"count":  3,
		"emails": map[string]any{"email": " A@B.CO "},
		"tags":   []any{" Go ", "ＦＯＲＭＳ"},
	})
}

func str(r v.Record, p v.Path) string {
	s, _ := r.Get(p).Str()
	return s
}

func TestTrimSpace(t *testing.T) {
	r := record()
	transform.TrimSpace()(r)

	assert.Equal(t, "Taro", str(r, v.PathOf("name")))
	assert.Equal(t, "A@B.CO", str(r, v.PathOf("emails", "email")))
	assert.Equal(t, "Go", str(r, v.PathOf("tags").Index(0)))
	assert.Equal(t, v.KindNumber, r["count"].Kind())
}

func TestStringFuncKeys(t *testing.T) {
	r := record()
	transform.Multi(transform.TrimSpace("email"), transform.ToLower("email"))(r)

	assert.Equal(t, "taro@example.com", str(r, v.PathOf("email")))
	assert.Equal(t, "  Taro  ", str(r, v.PathOf("name")))
	assert.True(t, r.Get(v.PathOf("missing")).IsAbsent())
}

func TestNarrow(t *testing.T) {
	r := record()
	transform.Narrow("age", "tags")(r)

	assert.Equal(t, "20", str(r, v.PathOf("age")))
	assert.Equal(t, "FORMS", str(r, v.PathOf("tags").Index(1)))
}

func TestNormalizerInSchema(t *testing.T) {
	s := v.NewSchema().
		Normalize(transform.TrimSpace(), transform.StringFunc(strings.ToLower, "email")).
		Field("name", v.String().Min(2, "")).
		Field("email", v.String().Email("")).
		MustBuild()

	in := v.RecordFrom(map[string]any{"name": "  Taro ", "email": " TARO@Example.COM "})
	out, err := s.Validate(in)
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Taro", "email": "taro@example.com"}, out)
	assert.Equal(t, "  Taro ", str(in, v.PathOf("name")))
}
