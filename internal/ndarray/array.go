package ndarray

import (
	"fmt"
	"math"
)

// Array is an n-dimensional array of homogeneous numbers stored in a flat
// row-major buffer. Arrays are immutable: every operation returns a new Array
// with its own buffer.
//
// Invariants:
//   - len(data) == Size() == product(Shape())
//   - every element has dtype DType()
//   - NDim() == len(Shape())
type Array struct {
	shape  Shape
	dtype  DataType
	ints   []int64   // Int64 data
	floats []float64 // Float64 data
}

type options struct {
	policy NumericPolicy
}

// Option configures array construction.
type Option func(*options)

// WithNumericPolicy selects how int and float leaves in one sequence are treated.
// The default is StrictNumeric.
func WithNumericPolicy(p NumericPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// New creates an Array from a nested value. It is the single entry point for
// user data: the shape and dtype are inferred and validated, then the leaves
// are copied into a fresh flat buffer.
//
// Example:
//
//	a, err := ndarray.New(ndarray.List(
//	    ndarray.Ints(1, 2),
//	    ndarray.Ints(3, 4),
//	    ndarray.Ints(5, 6),
//	))
//	// a.Shape() == (3, 2), a.DType() == Int64
func New(v Value, opts ...Option) (*Array, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	shape, dtype, err := InferShape(v, o.policy)
	if err != nil {
		return nil, err
	}

	leaves := Flatten(v)
	a := newArray(shape, dtype)
	if len(leaves) != a.Size() {
		return nil, fmt.Errorf("%w: %d leaves for shape %v", ErrSize, len(leaves), shape)
	}

	switch dtype {
	case Int64:
		for i, leaf := range leaves {
			a.ints[i] = leaf.IntValue()
		}
	case Float64:
		for i, leaf := range leaves {
			a.floats[i] = leaf.FloatValue()
		}
	}
	return a, nil
}

// newArray allocates a zeroed array. The caller owns the buffers.
func newArray(shape Shape, dtype DataType) *Array {
	a := &Array{shape: shape.Clone(), dtype: dtype}
	n := shape.NumElements()
	switch dtype {
	case Int64:
		a.ints = make([]int64, n)
	case Float64:
		a.floats = make([]float64, n)
	}
	return a
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// DType returns the element type.
func (a *Array) DType() DataType {
	return a.dtype
}

// NDim returns the number of axes.
func (a *Array) NDim() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return a.shape.NumElements()
}

// Copy returns an independent deep copy.
func (a *Array) Copy() *Array {
	return &Array{
		shape:  a.shape.Clone(),
		dtype:  a.dtype,
		ints:   cloneSlice(a.ints),
		floats: cloneSlice(a.floats),
	}
}

// Reshape returns a copy with a new shape holding the same number of elements.
// Row-major data order is unchanged.
//
// Example:
//
//	b, err := a.Reshape(2, 3) // (3, 2) -> (2, 3)
func (a *Array) Reshape(newShape ...int) (*Array, error) {
	shape := Shape(newShape)
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != a.Size() {
		return nil, fmt.Errorf("%w: cannot reshape array of size %d into shape %v", ErrSize, a.Size(), shape)
	}
	out := a.Copy()
	out.shape = shape.Clone()
	return out, nil
}

// Ints returns a copy of the data as int64 values.
// Float64 arrays return ErrType; use Floats instead.
func (a *Array) Ints() ([]int64, error) {
	if a.dtype == Float64 {
		return nil, fmt.Errorf("%w: array dtype is %s, not int64", ErrType, a.dtype)
	}
	out := make([]int64, len(a.ints))
	copy(out, a.ints)
	return out, nil
}

// Floats returns a copy of the data as float64 values. Integers are widened.
func (a *Array) Floats() []float64 {
	if a.dtype == Int64 {
		out := make([]float64, len(a.ints))
		for i, v := range a.ints {
			out[i] = float64(v)
		}
		return out
	}
	out := make([]float64, len(a.floats))
	copy(out, a.floats)
	return out
}

// At returns the element at the given multi-index as a scalar Value.
func (a *Array) At(index ...int) (Value, error) {
	if len(index) != len(a.shape) {
		return Value{}, fmt.Errorf("%w: expected %d indices, got %d", ErrIndex, len(a.shape), len(index))
	}
	offset := 0
	for i, stride := range a.shape.ComputeStrides() {
		idx := index[i]
		if idx < 0 || idx >= a.shape[i] {
			return Value{}, fmt.Errorf("%w: index %d out of bounds for axis %d with size %d", ErrIndex, idx, i, a.shape[i])
		}
		offset += idx * stride
	}
	return a.scalar(offset), nil
}

// scalar returns the element at a flat offset.
func (a *Array) scalar(offset int) Value {
	if a.dtype == Int64 {
		return Int(a.ints[offset])
	}
	return Float(a.floats[offset])
}

// Nested returns the array in nested-sequence form.
func (a *Array) Nested() Value {
	flat := make([]Value, a.Size())
	if a.dtype != Undefined {
		for i := range flat {
			flat[i] = a.scalar(i)
		}
	}
	return unflatten(flat, a.shape)
}

// String renders the array in nested-sequence form.
func (a *Array) String() string {
	return a.Nested().String()
}

// Equal reports whether two arrays have the same shape, dtype and elements.
// NaN elements compare equal to each other.
func (a *Array) Equal(other *Array) bool {
	if other == nil || a.dtype != other.dtype || !a.shape.Equal(other.shape) {
		return false
	}
	for i, v := range a.ints {
		if v != other.ints[i] {
			return false
		}
	}
	for i, v := range a.floats {
		w := other.floats[i]
		if v != w && !(math.IsNaN(v) && math.IsNaN(w)) {
			return false
		}
	}
	return true
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
