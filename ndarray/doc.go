// Copyright 2025 MiniNumPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides n-dimensional numeric arrays with NumPy-style
// semantics.
//
// # Overview
//
// An Array is built from a nested Value (an int, a float, or a list of
// values). Construction infers the shape and the element type, rejects
// ragged input, and stores the elements in row-major order.
//
// # Basic Usage
//
//	import "github.com/mininumpy/mininumpy/ndarray"
//
//	func main() {
//	    a, _ := ndarray.New(ndarray.List(ndarray.Ints(1, 2, 3), ndarray.Ints(4, 5, 6)))
//	    b, _ := ndarray.New(ndarray.Ints(10, 20, 30))
//
//	    sum, _ := a.Add(b)       // [[11, 22, 33], [14, 25, 36]]
//	    t, _ := a.Transpose()    // [[1, 4], [2, 5], [3, 6]]
//	    q, _ := a.Div(b)         // Float64 result
//	}
//
// # Element Types
//
// Arrays hold Int64 or Float64 elements. An empty array has the Undefined
// type. By default ints and floats may not be mixed in one literal; pass
// WithNumericPolicy(PromoteNumeric) to widen mixed input to Float64.
//
// # Broadcasting
//
// Binary operations align shapes from the right. Two axes are compatible
// when they are equal or one of them is 1; the result takes the larger
// length.
//
// # Errors
//
// Failures wrap one of the sentinel errors (ErrShape, ErrType, ErrBroadcast
// and so on) and can be matched with errors.Is.
package ndarray
