package formvalidation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v "github.com/Gobd/formvalidation"
)

func TestDate(t *testing.T) {
	birthday := v.Date(v.Messages{Required: "enter a date", InvalidType: "not a date"})

	got, errs := birthday.Validate(v.StringValue("1990-01-31"))
	require.Empty(t, errs)
	assert.Equal(t, time.Date(1990, 1, 31, 0, 0, 0, 0, time.UTC), got)

	got, errs = birthday.Validate(v.StringValue("1990-01-31T09:00:00+09:00"))
	require.Empty(t, errs)
	assert.True(t, time.Date(1990, 1, 31, 0, 0, 0, 0, time.UTC).Equal(got.(time.Time)))

	_, errs = birthday.Validate(v.Absent())
	assert.Equal(t, v.CodeRequired, errs[0].Code)
	assert.Equal(t, "enter a date", errs[0].Message)

	for _, in := range []v.Value{v.StringValue("1990-02-30"), v.StringValue("yesterday"), v.NumberValue(19900101)} {
		_, errs = birthday.Validate(in)
		if assert.Len(t, errs, 1, in.String()) {
			assert.Equal(t, v.CodeInvalidType, errs[0].Code)
			assert.Equal(t, "not a date", errs[0].Message)
		}
	}
}

func TestDateRange(t *testing.T) {
	r := v.Date().
		Min(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)).
		Max(time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC))

	_, errs := r.Validate(v.StringValue("2020-06-15"))
	assert.Empty(t, errs)

	_, errs = r.Validate(v.StringValue("2019-12-31"))
	if assert.Len(t, errs, 1) {
		assert.Equal(t, v.CodeConstraint, errs[0].Code)
		assert.Equal(t, "the date is out of range", errs[0].Message)
	}

	_, errs = r.RangeError("only 2020").Validate(v.StringValue("2021-01-01"))
	assert.Equal(t, "only 2020", errs[0].Message)
}

func TestDateLayout(t *testing.T) {
	r := v.Date().Layout("2006/01/02")

	_, errs := r.Validate(v.StringValue("2024/03/01"))
	assert.Empty(t, errs)

	_, errs = r.Validate(v.StringValue("2024-03-01"))
	assert.Equal(t, v.CodeInvalidType, errs[0].Code)
	assert.Equal(t, "must be a valid date", errs[0].Message)
}

func TestDateLayoutAcceptsRFC3339(t *testing.T) {
	r := v.Date().Layout("2006/01/02")

	got, errs := r.Validate(v.StringValue("1990/01/02"))
	require.Empty(t, errs)

	again, errs := r.Validate(v.FromAny(got))
	require.Empty(t, errs)
	assert.Equal(t, got, again)
}
