package formvalidation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Kind tags the variant held by a [Value].
type Kind uint8

// The zero Kind is KindAbsent, so a missing map key reads as absent.
const (
	KindAbsent Kind = iota
	KindString
	KindBool
	KindNumber
	KindObject
	KindList
)

var kindNames = [...]string{"absent", "string", "bool", "number", "object", "list"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is one untyped input value: absent, a string, a bool, a number,
// a nested record or a list. The zero Value is absent.
type Value struct {
	kind Kind
	str  string
	b    bool
	num  float64
	obj  Record
	list []Value
}

// Record is an untyped input record keyed by field name.
type Record map[string]Value

// Absent returns the absent value.
func Absent() Value { return Value{} }

// StringValue wraps s.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// NumberValue wraps f.
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }

// ObjectValue wraps a nested record. A nil record is still an object.
func ObjectValue(r Record) Value {
	if r == nil {
		r = Record{}
	}
	return Value{kind: KindObject, obj: r}
}

// ListValue wraps vs.
func ListValue(vs ...Value) Value { return Value{kind: KindList, list: vs} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v carries no value.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Str returns the string held by v.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Bool returns the bool held by v.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Number returns the number held by v.
func (v Value) Number() (float64, bool) { return v.num, v.kind == KindNumber }

// Object returns the record held by v.
func (v Value) Object() (Record, bool) { return v.obj, v.kind == KindObject }

// List returns the elements held by v.
func (v Value) List() ([]Value, bool) { return v.list, v.kind == KindList }

// Interface converts v back into plain Go data (nil, string, bool, float64,
// map[string]any or []any).
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindObject:
		return v.obj.Map()
	case KindList:
		out := make([]any, len(v.list))
		for i := range v.list {
			out[i] = v.list[i].Interface()
		}
		return out
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case KindAbsent:
		return "<absent>"
	case KindString:
		return strconv.Quote(v.str)
	}
	return fmt.Sprint(v.Interface())
}

func (v Value) clone() Value {
	switch v.kind {
	case KindObject:
		return ObjectValue(v.obj.Clone())
	case KindList:
		out := make([]Value, len(v.list))
		for i := range v.list {
			out[i] = v.list[i].clone()
		}
		return ListValue(out...)
	}
	return v
}

// FromAny converts decoded data into a Value. Integers and floats become
// numbers, time.Time becomes an RFC 3339 string, maps become records and
// slices become lists. Unknown types are rendered with fmt.Sprint.
func FromAny(a any) Value { //nolint:revive // flat type switch
	switch x := a.(type) {
	case nil:
		return Absent()
	case Value:
		return x
	case Record:
		return ObjectValue(x)
	case string:
		return StringValue(x)
	case bool:
		return BoolValue(x)
	case int:
		return NumberValue(float64(x))
	case int8:
		return NumberValue(float64(x))
	case int16:
		return NumberValue(float64(x))
	case int32:
		return NumberValue(float64(x))
	case int64:
		return NumberValue(float64(x))
	case uint:
		return NumberValue(float64(x))
	case uint8:
		return NumberValue(float64(x))
	case uint16:
		return NumberValue(float64(x))
	case uint32:
		return NumberValue(float64(x))
	case uint64:
		return NumberValue(float64(x))
	case float32:
		return NumberValue(float64(x))
	case float64:
		return NumberValue(x)
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return NumberValue(f)
		}
		return StringValue(x.String())
	case time.Time:
		return StringValue(x.Format(time.RFC3339))
	case map[string]any:
		return ObjectValue(RecordFrom(x))
	case map[any]any:
		r := make(Record, len(x))
		for k, e := range x {
			r[fmt.Sprint(k)] = FromAny(e)
		}
		return ObjectValue(r)
	case []any:
		out := make([]Value, len(x))
		for i := range x {
			out[i] = FromAny(x[i])
		}
		return ListValue(out...)
	case []string:
		out := make([]Value, len(x))
		for i := range x {
			out[i] = StringValue(x[i])
		}
		return ListValue(out...)
	case fmt.Stringer:
		return StringValue(x.String())
	}
	return StringValue(fmt.Sprint(a))
}

// RecordFrom converts an untyped map into a Record.
func RecordFrom(m map[string]any) Record {
	r := make(Record, len(m))
	for k, a := range m {
		r[k] = FromAny(a)
	}
	return r
}

// Map converts r back into plain Go data.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r))
	for k, v := range r {
		m[k] = v.Interface()
	}
	return m
}

// Clone deep-copies r, including nested records and lists.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v.clone()
	}
	return out
}

// Get returns the value at p, or Absent when the path does not resolve.
func (r Record) Get(p Path) Value {
	if len(p) == 0 {
		return ObjectValue(r)
	}
	cur := ObjectValue(r)
	for _, seg := range p {
		switch {
		case seg.IsIndex():
			list, ok := cur.List()
			if !ok || seg.index < 0 || seg.index >= len(list) {
				return Absent()
			}
			cur = list[seg.index]
		default:
			obj, ok := cur.Object()
			if !ok {
				return Absent()
			}
			cur = obj[seg.key]
		}
	}
	return cur
}
