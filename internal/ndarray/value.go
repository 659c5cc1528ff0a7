package ndarray

import (
	"math"
	"strconv"
	"strings"
)

type valueKind uint8

const (
	kindList valueKind = iota
	kindInt
	kindFloat
)

// Value is a nested numeric value: either an integer scalar, a floating-point
// scalar, or a list of Values. The zero Value is an empty list.
//
// Example:
//
//	v := ndarray.List(
//	    ndarray.List(ndarray.Int(1), ndarray.Int(2)),
//	    ndarray.List(ndarray.Int(3), ndarray.Int(4)),
//	)
//	fmt.Println(v) // [[1, 2], [3, 4]]
type Value struct {
	kind  valueKind
	i     int64
	f     float64
	items []Value
}

// Int returns an integer scalar.
func Int(v int64) Value {
	return Value{kind: kindInt, i: v}
}

// Float returns a floating-point scalar.
func Float(v float64) Value {
	return Value{kind: kindFloat, f: v}
}

// List returns a list holding a copy of items.
func List(items ...Value) Value {
	return Value{kind: kindList, items: append([]Value(nil), items...)}
}

// Ints returns a one-level list of integer scalars.
func Ints(vs ...int64) Value {
	items := make([]Value, len(vs))
	for i, v := range vs {
		items[i] = Int(v)
	}
	return Value{kind: kindList, items: items}
}

// Floats returns a one-level list of floating-point scalars.
func Floats(vs ...float64) Value {
	items := make([]Value, len(vs))
	for i, v := range vs {
		items[i] = Float(v)
	}
	return Value{kind: kindList, items: items}
}

// IsScalar reports whether v is a number rather than a list.
func (v Value) IsScalar() bool {
	return v.kind != kindList
}

// DType returns the scalar's data type, or Undefined for lists.
func (v Value) DType() DataType {
	switch v.kind {
	case kindInt:
		return Int64
	case kindFloat:
		return Float64
	default:
		return Undefined
	}
}

// Len returns the number of items of a list, or 0 for a scalar.
func (v Value) Len() int {
	return len(v.items)
}

// Index returns the i-th item of a list.
// Panics if i is out of range, like slice indexing.
func (v Value) Index(i int) Value {
	return v.items[i]
}

// Items returns a copy of the list items.
func (v Value) Items() []Value {
	return append([]Value(nil), v.items...)
}

// IntValue returns the scalar as int64. Float scalars are truncated.
func (v Value) IntValue() int64 {
	if v.kind == kindFloat {
		return int64(v.f)
	}
	return v.i
}

// FloatValue returns the scalar as float64. Integer scalars are widened.
func (v Value) FloatValue() float64 {
	if v.kind == kindInt {
		return float64(v.i)
	}
	return v.f
}

// Equal reports whether v and other have the same structure, dtypes and values.
// NaN scalars compare equal to each other.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case kindInt:
		return v.i == other.i
	case kindFloat:
		return v.f == other.f || (math.IsNaN(v.f) && math.IsNaN(other.f))
	}
	if len(v.items) != len(other.items) {
		return false
	}
	for i := range v.items {
		if !v.items[i].Equal(other.items[i]) {
			return false
		}
	}
	return true
}

// String renders v in nested-list form, e.g. [[1, 2], [3.5, 4.0]].
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.kind {
	case kindInt:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case kindFloat:
		sb.WriteString(formatFloat(v.f))
	default:
		sb.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				sb.WriteString(", ")
			}
			item.write(sb)
		}
		sb.WriteByte(']')
	}
}

// formatFloat always shows that the number is floating-point: 2 prints as 2.0.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
