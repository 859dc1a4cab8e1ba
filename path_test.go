package formvalidation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v "github.com/Gobd/formvalidation"
)

func TestPathString(t *testing.T) {
	tests := []struct {
		path    v.Path
		str     string
		pointer string
	}{
		{nil, "", "/"},
		{v.PathOf("email"), "email", "/email"},
		{v.PathOf("emails", "confirmEmail"), "emails.confirmEmail", "/emails/confirmEmail"},
		{v.PathOf("tags").Index(2), "tags[2]", "/tags/2"},
		{v.PathOf("rows").Index(0).Key("name"), "rows[0].name", "/rows/0/name"},
		{v.PathOf("a/b", "c~d"), "a/b.c~d", "/a~1b/c~0d"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.path.String())
			assert.Equal(t, tt.pointer, tt.path.Pointer())
		})
	}
}

func TestPathDoesNotAlias(t *testing.T) {
	base := make(v.Path, 1, 4)
	base[0] = v.Key("emails")

	a := base.Key("email")
	b := base.Key("confirmEmail")

	assert.Equal(t, "emails.email", a.String())
	assert.Equal(t, "emails.confirmEmail", b.String())
	assert.Len(t, base, 1)
}

func TestPathRelations(t *testing.T) {
	emails := v.PathOf("emails")
	confirm := v.PathOf("emails", "confirmEmail")
	other := v.PathOf("email")

	assert.True(t, confirm.HasPrefix(emails))
	assert.True(t, confirm.HasPrefix(nil))
	assert.False(t, emails.HasPrefix(confirm))

	assert.True(t, emails.Overlaps(confirm))
	assert.True(t, confirm.Overlaps(emails))
	assert.False(t, other.Overlaps(emails))

	assert.True(t, confirm.Equal(v.PathOf("emails").Concat(v.PathOf("confirmEmail"))))
	assert.False(t, v.PathOf("tags").Index(0).Equal(v.PathOf("tags", "0")))
}

func TestPathSegment(t *testing.T) {
	k := v.Key("name")
	assert.False(t, k.IsIndex())
	assert.Equal(t, "name", k.Key())

	i := v.Index(3)
	assert.True(t, i.IsIndex())
	assert.Equal(t, 3, i.Index())
	assert.Equal(t, "3", i.String())
}
