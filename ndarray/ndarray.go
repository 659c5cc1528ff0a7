// Copyright 2025 MiniNumPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"gonum.org/v1/gonum/mat"

	"github.com/mininumpy/mininumpy/internal/ndarray"
	"github.com/mininumpy/mininumpy/internal/parallel"
)

// Type aliases for public API

// Array is an n-dimensional array of Int64 or Float64 elements.
type Array = ndarray.Array

// Value is a nested scalar or list used to build arrays.
type Value = ndarray.Value

// Shape represents the axis lengths of an array.
// Example: Shape{2, 3} is a matrix with 2 rows and 3 columns.
type Shape = ndarray.Shape

// DataType is the element type of an array.
type DataType = ndarray.DataType

// Data type constants.
const (
	Undefined DataType = ndarray.Undefined
	Int64     DataType = ndarray.Int64
	Float64   DataType = ndarray.Float64
)

// NumericPolicy controls how mixed int and float input is handled.
type NumericPolicy = ndarray.NumericPolicy

// Numeric policy constants.
const (
	StrictNumeric  NumericPolicy = ndarray.StrictNumeric
	PromoteNumeric NumericPolicy = ndarray.PromoteNumeric
)

// Option configures array construction.
type Option = ndarray.Option

// ParallelConfig controls how element-wise kernels are split across goroutines.
type ParallelConfig = parallel.Config

// Errors returned by array operations. Match them with errors.Is.
var (
	ErrShape       = ndarray.ErrShape
	ErrType        = ndarray.ErrType
	ErrSize        = ndarray.ErrSize
	ErrPermutation = ndarray.ErrPermutation
	ErrBroadcast   = ndarray.ErrBroadcast
	ErrRange       = ndarray.ErrRange
	ErrDomain      = ndarray.ErrDomain
	ErrValue       = ndarray.ErrValue
	ErrIndex       = ndarray.ErrIndex
)

// Values

// Int returns an integer scalar value.
func Int(v int64) Value { return ndarray.Int(v) }

// Float returns a floating-point scalar value.
func Float(v float64) Value { return ndarray.Float(v) }

// List returns a list value holding items.
func List(items ...Value) Value { return ndarray.List(items...) }

// Ints returns a flat list of integer scalars.
func Ints(vs ...int64) Value { return ndarray.Ints(vs...) }

// Floats returns a flat list of floating-point scalars.
func Floats(vs ...float64) Value { return ndarray.Floats(vs...) }

// Construction

// New builds an array from a nested value.
//
// Example:
//
//	a, err := ndarray.New(ndarray.List(ndarray.Ints(1, 2), ndarray.Ints(3, 4)))
func New(v Value, opts ...Option) (*Array, error) {
	return ndarray.New(v, opts...)
}

// FromAny builds an array from Go numbers and (nested) slices of numbers.
//
// Example:
//
//	a, err := ndarray.FromAny([][]float64{{1, 2}, {3, 4}})
func FromAny(x any, opts ...Option) (*Array, error) {
	return ndarray.FromAny(x, opts...)
}

// FromDense builds a Float64 array from a gonum matrix.
func FromDense(m mat.Matrix) (*Array, error) {
	return ndarray.FromDense(m)
}

// WithNumericPolicy sets the policy applied to mixed int and float input.
func WithNumericPolicy(p NumericPolicy) Option {
	return ndarray.WithNumericPolicy(p)
}

// ParseNumericPolicy parses "strict" or "promote".
func ParseNumericPolicy(s string) (NumericPolicy, error) {
	return ndarray.ParseNumericPolicy(s)
}

// Shape helpers

// InferShape returns the shape and element type of a nested value.
func InferShape(v Value, policy NumericPolicy) (Shape, DataType, error) {
	return ndarray.InferShape(v, policy)
}

// BroadcastShapes returns the shape two operands broadcast to.
//
// Example:
//
//	s, err := ndarray.BroadcastShapes(ndarray.Shape{3, 1}, ndarray.Shape{4}) // (3, 4)
func BroadcastShapes(a, b Shape) (Shape, error) {
	return ndarray.BroadcastShapes(a, b)
}

// Flatten returns the scalar leaves of v in row-major order.
func Flatten(v Value) []Value {
	return ndarray.Flatten(v)
}

// Unflatten rebuilds a nested value of the given shape from flat leaves.
func Unflatten(flat []Value, shape Shape) (Value, error) {
	return ndarray.Unflatten(flat, shape)
}

// InversePermutation returns the permutation that undoes axes.
func InversePermutation(axes []int) ([]int, error) {
	return ndarray.InversePermutation(axes)
}

// Element-wise operations

// Exp returns e raised to each element.
func Exp(a *Array) (*Array, error) { return ndarray.Exp(a) }

// Log returns the natural logarithm of each element.
func Log(a *Array) (*Array, error) { return ndarray.Log(a) }

// Sqrt returns the square root of each element.
func Sqrt(a *Array) (*Array, error) { return ndarray.Sqrt(a) }

// Abs returns the absolute value of each element.
func Abs(a *Array) *Array { return ndarray.Abs(a) }

// Add returns a + b with broadcasting.
func Add(a, b *Array) (*Array, error) { return ndarray.Add(a, b) }

// Sub returns a - b with broadcasting.
func Sub(a, b *Array) (*Array, error) { return ndarray.Sub(a, b) }

// Mul returns a * b with broadcasting.
func Mul(a, b *Array) (*Array, error) { return ndarray.Mul(a, b) }

// Div returns a / b with broadcasting. The result is always Float64.
func Div(a, b *Array) (*Array, error) { return ndarray.Div(a, b) }

// Pow returns a ** b with broadcasting.
func Pow(a, b *Array) (*Array, error) { return ndarray.Pow(a, b) }

// Parallelism

// SetParallelism sets the process-wide configuration used by element-wise kernels.
func SetParallelism(cfg ParallelConfig) {
	ndarray.SetParallelism(cfg)
}

// DefaultParallelConfig returns a parallel configuration sized to the machine.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialConfig returns a configuration that runs every kernel on the caller's goroutine.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}
