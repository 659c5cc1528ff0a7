// Copyright 2025 MiniNumPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package creation provides convenience constructors for MiniNumPy arrays.
//
// Example:
//
//	z, _ := creation.Zeros(2, 3)          // [[0, 0, 0], [0, 0, 0]]
//	i, _ := creation.Eye(2)               // [[1, 0], [0, 1]]
//	r, _ := creation.Arange(0, 10, 3)     // [0, 3, 6, 9]
//	l, _ := creation.Linspace(0, 1, 4)    // [0.0, 0.25, 0.5, 0.75]
package creation

import (
	"github.com/mininumpy/mininumpy/internal/creation"
	"github.com/mininumpy/mininumpy/ndarray"
)

// Number is the set of scalar types accepted by Arange.
type Number = creation.Number

// Zeros returns an Int64 array of the given shape filled with 0.
func Zeros(shape ...int) (*ndarray.Array, error) {
	return creation.Zeros(shape...)
}

// Ones returns an Int64 array of the given shape filled with 1.
func Ones(shape ...int) (*ndarray.Array, error) {
	return creation.Ones(shape...)
}

// Full returns an array of the given shape with every element set to value.
func Full(value ndarray.Value, shape ...int) (*ndarray.Array, error) {
	return creation.Full(value, shape...)
}

// Eye returns the (n, n) Int64 identity matrix.
func Eye(n int) (*ndarray.Array, error) {
	return creation.Eye(n)
}

// Arange returns start, start+step, ... strictly below stop.
func Arange[T Number](start, stop, step T) (*ndarray.Array, error) {
	return creation.Arange(start, stop, step)
}

// Linspace returns num evenly spaced Float64 values over [start, stop).
func Linspace(start, stop float64, num int) (*ndarray.Array, error) {
	return creation.Linspace(start, stop, num)
}
