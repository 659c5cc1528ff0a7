package ndarray

import (
	"fmt"
	"math"
)

// FromAny creates an Array from plain Go values: integers, floats, Values and
// slices of them ([]any nested to any depth, []int, [][]float64, ...).
//
// Example:
//
//	a, err := ndarray.FromAny([]any{[]any{1, 2}, []any{3, 4}})
//	b, err := ndarray.FromAny([][]float64{{1.5, 2}, {3, 4}})
func FromAny(x any, opts ...Option) (*Array, error) {
	v, err := ToValue(x)
	if err != nil {
		return nil, err
	}
	return New(v, opts...)
}

// ToValue converts a Go value into a nested Value.
// Anything that is neither a number nor a supported sequence returns ErrValue.
//
//nolint:gocyclo,cyclop // One case per supported Go type.
func ToValue(x any) (Value, error) {
	switch v := x.(type) {
	case Value:
		return v, nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint64:
		return fromUint(v)
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case []Value:
		return List(v...), nil
	case []any:
		return listOf(v)
	case []int:
		return listOf(v)
	case []int64:
		return Ints(v...), nil
	case []float64:
		return Floats(v...), nil
	case [][]int:
		return listOf(v)
	case [][]int64:
		return listOf(v)
	case [][]float64:
		return listOf(v)
	default:
		return Value{}, fmt.Errorf("%w: expected array-like list or single float or int value, got %T", ErrValue, x)
	}
}

func fromUint(v uint64) (Value, error) {
	if v > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %d overflows int64", ErrValue, v)
	}
	return Int(int64(v)), nil
}

func listOf[T any](xs []T) (Value, error) {
	items := make([]Value, len(xs))
	for i, x := range xs {
		item, err := ToValue(x)
		if err != nil {
			return Value{}, err
		}
		items[i] = item
	}
	return Value{kind: kindList, items: items}, nil
}
