package formvalidation

import (
	"math"
	"strconv"

	"github.com/asaskevich/govalidator"
)

// Primitive is the target type a rule coerces its raw input into.
type Primitive uint8

const (
	PrimitiveString Primitive = iota
	PrimitiveNumber
	PrimitiveBool
	PrimitiveDate
)

// Coerce converts a raw input value into primitive p. Values it cannot
// convert are returned unchanged for the rule to reject.
//
// The steps run in order:
//   - an empty string becomes absent
//   - a bool target takes the checkbox reading of the value (absent is false)
//   - a number target turns an all-digit string into a number
//   - string and date targets are left alone
func Coerce(v Value, p Primitive) Value {
	if s, ok := v.Str(); ok && s == "" {
		v = Absent()
	}
	switch p {
	case PrimitiveBool:
		return BoolValue(truthy(v))
	case PrimitiveNumber:
		if s, ok := v.Str(); ok && govalidator.IsNumeric(s) {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return NumberValue(f)
			}
		}
	}
	return v
}

func truthy(v Value) bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num != 0 && !math.IsNaN(v.num)
	case KindString:
		return v.str != ""
	case KindObject, KindList:
		return true
	}
	return false
}
