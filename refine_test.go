package formvalidation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v "github.com/Gobd/formvalidation"
)

var passwords = v.NewSchema().
	Field("password", v.String().Min(8, "too short")).
	Field("confirm", v.String()).
	Field("nickname", v.Optional(v.String())).
	Refine(v.Equal(v.PathOf("password"), v.PathOf("confirm"), "passwords differ")).
	MustBuild()

func TestRefineMismatch(t *testing.T) {
	res := passwords.SafeValidate(v.RecordFrom(map[string]any{
		"password": "correct horse",
		"confirm":  "battery staple",
	}))
	require.Len(t, res.Errors, 1)
	assert.Equal(t, v.PathOf("confirm"), res.Errors[0].Path)
	assert.Equal(t, v.CodeCrossField, res.Errors[0].Code)
	assert.Equal(t, "passwords differ", res.Errors[0].Message)
}

func TestRefineMatch(t *testing.T) {
	res := passwords.SafeValidate(v.RecordFrom(map[string]any{
		"password": "correct horse",
		"confirm":  "correct horse",
	}))
	assert.True(t, res.OK())
}

func TestRefineSkippedWhenReadFailed(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		path string
	}{
		{"first read failed", map[string]any{"password": "short", "confirm": "other"}, "password"},
		{"second read failed", map[string]any{"password": "correct horse"}, "confirm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := passwords.SafeValidate(v.RecordFrom(tt.in))
			require.Len(t, res.Errors, 1)
			assert.Equal(t, tt.path, res.Errors[0].Path.String())
			assert.NotEqual(t, v.CodeCrossField, res.Errors[0].Code)
		})
	}
}

func TestRefineRunsWhenOtherFieldsFailed(t *testing.T) {
	s := v.NewSchema().
		Field("a", v.String()).
		Field("b", v.String()).
		Field("c", v.Number()).
		Refine(v.Equal(v.PathOf("a"), v.PathOf("b"), "differ")).
		MustBuild()

	res := s.SafeValidate(v.RecordFrom(map[string]any{"a": "x", "b": "y"}))
	require.Len(t, res.Errors, 2)
	assert.Equal(t, "c", res.Errors[0].Path.String())
	assert.Equal(t, "b", res.Errors[1].Path.String())
	assert.Equal(t, v.CodeCrossField, res.Errors[1].Code)
}

func TestRefineTargetIndependentOfReads(t *testing.T) {
	s := v.NewSchema().
		Field("start", v.Number()).
		Field("end", v.Number()).
		Refine(v.Refine(
			[]v.Path{v.PathOf("start"), v.PathOf("end")},
			nil,
			"start must not be after end",
			func(vals []any) bool { return vals[0].(float64) <= vals[1].(float64) },
		)).
		MustBuild()

	res := s.SafeValidate(v.RecordFrom(map[string]any{"start": 5, "end": 2}))
	require.Len(t, res.Errors, 1)
	assert.Empty(t, res.Errors[0].Path)
	assert.Equal(t, []string{"start must not be after end"}, res.Errors.Flat().FormErrors)
}

func TestRefineReadsNestedPaths(t *testing.T) {
	emails := v.NewSchema().
		Field("email", v.String()).
		Field("confirmEmail", v.String()).
		MustBuild()
	s := v.NewSchema().
		Field("emails", v.Object(emails)).
		Refine(v.Equal(v.PathOf("emails", "email"), v.PathOf("emails", "confirmEmail"), "differ")).
		MustBuild()

	res := s.SafeValidate(v.RecordFrom(map[string]any{
		"emails": map[string]any{"email": "a@b.co", "confirmEmail": "c@d.co"},
	}))
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "emails.confirmEmail", res.Errors[0].Path.String())

	// an error on the parent object overlaps both reads
	res = s.SafeValidate(v.RecordFrom(map[string]any{"emails": "x"}))
	require.Len(t, res.Errors, 1)
	assert.Equal(t, v.CodeInvalidType, res.Errors[0].Code)
}

func TestRefineSeesOptionalAbsentAsNil(t *testing.T) {
	var seen []any
	s := v.NewSchema().
		Field("nickname", v.Optional(v.String())).
		Refine(v.Refine([]v.Path{v.PathOf("nickname")}, v.PathOf("nickname"), "x", func(vals []any) bool {
			seen = vals
			return true
		})).
		MustBuild()

	res := s.SafeValidate(v.Record{})
	assert.True(t, res.OK())
	assert.Equal(t, []any{nil}, seen)
}

func TestRefineOrder(t *testing.T) {
	always := func([]any) bool { return false }
	s := v.NewSchema().
		Field("a", v.String()).
		Refine(
			v.Refine([]v.Path{v.PathOf("a")}, v.PathOf("a"), "first", always),
			v.Refine([]v.Path{v.PathOf("a")}, v.PathOf("a"), "second", always),
		).
		MustBuild()

	res := s.SafeValidate(v.RecordFrom(map[string]any{"a": "x"}))
	assert.Equal(t, []string{"first", "second"}, res.Errors.At(v.PathOf("a")))
}
