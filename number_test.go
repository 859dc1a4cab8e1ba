package formvalidation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	v "github.com/Gobd/formvalidation"
)

func TestNumber(t *testing.T) {
	age := v.Number(v.Messages{Required: "enter age", InvalidType: "digits only"}).
		Min(1, "too small").
		Max(150, "too big").
		Int("whole")

	tests := []struct {
		name string
		in   v.Value
		want any
		code v.Code
		msg  string
	}{
		{"number", v.NumberValue(20), float64(20), "", ""},
		{"digit string", v.StringValue("20"), float64(20), "", ""},
		{"lower bound inclusive", v.StringValue("1"), float64(1), "", ""},
		{"upper bound inclusive", v.NumberValue(150), float64(150), "", ""},
		{"absent", v.Absent(), nil, v.CodeRequired, "enter age"},
		{"empty", v.StringValue(""), nil, v.CodeRequired, "enter age"},
		{"letters", v.StringValue("abc"), nil, v.CodeInvalidType, "digits only"},
		{"full-width digits", v.StringValue("２０"), nil, v.CodeInvalidType, "digits only"},
		{"negative string", v.StringValue("-3"), nil, v.CodeInvalidType, "digits only"},
		{"decimal string", v.StringValue("2.5"), nil, v.CodeInvalidType, "digits only"},
		{"bool", v.BoolValue(true), nil, v.CodeInvalidType, "digits only"},
		{"NaN", v.NumberValue(math.NaN()), nil, v.CodeInvalidType, "digits only"},
		{"Inf", v.NumberValue(math.Inf(1)), nil, v.CodeInvalidType, "digits only"},
		{"zero", v.StringValue("0"), nil, v.CodeConstraint, "too small"},
		{"big", v.NumberValue(151), nil, v.CodeConstraint, "too big"},
		{"fraction", v.NumberValue(2.5), nil, v.CodeConstraint, "whole"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := age.Validate(tt.in)
			if tt.code == "" {
				assert.Empty(t, errs)
				assert.Equal(t, tt.want, got)
				return
			}
			assert.Nil(t, got)
			if assert.Len(t, errs, 1) {
				assert.Equal(t, tt.code, errs[0].Code)
				assert.Equal(t, tt.msg, errs[0].Message)
			}
		})
	}
}

func TestNumberZeroBounds(t *testing.T) {
	r := v.Number().Min(0, "").Max(0, "")

	got, errs := r.Validate(v.NumberValue(0))
	assert.Empty(t, errs)
	assert.Equal(t, float64(0), got)

	_, errs = r.Validate(v.NumberValue(-1))
	assert.Equal(t, "must be no less than 0", errs[0].Message)

	_, errs = r.Validate(v.NumberValue(1))
	assert.Equal(t, "must be no greater than 0", errs[0].Message)
}

func TestNumberDefaultMessages(t *testing.T) {
	_, errs := v.Number().Validate(v.Absent())
	assert.Equal(t, "cannot be blank", errs[0].Message)

	_, errs = v.Number().Validate(v.StringValue("x"))
	assert.Equal(t, "must be a number", errs[0].Message)

	_, errs = v.Number().Int("").Validate(v.NumberValue(0.5))
	assert.Equal(t, "must be an integer", errs[0].Message)
}
