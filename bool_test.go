package formvalidation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v "github.com/Gobd/formvalidation"
)

func TestBool(t *testing.T) {
	tests := []struct {
		name string
		in   v.Value
		want bool
	}{
		{"absent", v.Absent(), false},
		{"empty", v.StringValue(""), false},
		{"checked", v.StringValue("on"), true},
		{"true", v.BoolValue(true), true},
		{"false", v.BoolValue(false), false},
		{"one", v.NumberValue(1), true},
		{"zero", v.NumberValue(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := v.Bool().Validate(tt.in)
			assert.Empty(t, errs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoolTrue(t *testing.T) {
	agree := v.Bool().True("you must agree")

	got, errs := agree.Validate(v.StringValue("on"))
	assert.Empty(t, errs)
	assert.Equal(t, true, got)

	for _, in := range []v.Value{v.Absent(), v.StringValue(""), v.BoolValue(false), v.NumberValue(0)} {
		_, errs := agree.Validate(in)
		if assert.Len(t, errs, 1, in.String()) {
			assert.Equal(t, v.CodeConstraint, errs[0].Code)
			assert.Equal(t, "you must agree", errs[0].Message)
		}
	}
}
