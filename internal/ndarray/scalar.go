package ndarray

import (
	"fmt"
	"math"
)

// binaryOp describes a scalar arithmetic operator.
type binaryOp struct {
	name string
	// trueDiv forces a Float64 result even for integer operands.
	trueDiv bool
	ints    func(x, y int64) (int64, error)
	floats  func(x, y float64) float64
}

var (
	opAdd = binaryOp{
		name:   "add",
		ints:   func(x, y int64) (int64, error) { return x + y, nil },
		floats: func(x, y float64) float64 { return x + y },
	}
	opSub = binaryOp{
		name:   "sub",
		ints:   func(x, y int64) (int64, error) { return x - y, nil },
		floats: func(x, y float64) float64 { return x - y },
	}
	opMul = binaryOp{
		name:   "mul",
		ints:   func(x, y int64) (int64, error) { return x * y, nil },
		floats: func(x, y float64) float64 { return x * y },
	}
	opDiv = binaryOp{
		name:    "div",
		trueDiv: true,
		floats:  func(x, y float64) float64 { return x / y },
	}
	opPow = binaryOp{
		name:   "pow",
		ints:   powInt,
		floats: math.Pow,
	}
)

// resultType returns the output dtype for operands of type a and b.
func (op binaryOp) resultType(a, b DataType) DataType {
	dt := promote(a, b)
	if op.trueDiv && dt == Int64 {
		return Float64
	}
	return dt
}

// kernel returns the per-element function for the given output dtype.
func (op binaryOp) kernel(dtype DataType) binaryKernel {
	if dtype == Int64 {
		return func(a, b *Array, ai, bi int, out *Array, oi int) error {
			v, err := op.ints(a.ints[ai], b.ints[bi])
			if err != nil {
				return err
			}
			out.ints[oi] = v
			return nil
		}
	}
	return func(a, b *Array, ai, bi int, out *Array, oi int) error {
		out.floats[oi] = op.floats(a.floatAt(ai), b.floatAt(bi))
		return nil
	}
}

// floatAt returns the element at a flat offset widened to float64.
func (a *Array) floatAt(offset int) float64 {
	if a.dtype == Int64 {
		return float64(a.ints[offset])
	}
	return a.floats[offset]
}

// powInt raises x to a non-negative integer power by repeated squaring.
// Overflow wraps, as with the other int64 operators.
func powInt(x, y int64) (int64, error) {
	if y < 0 {
		return 0, fmt.Errorf("%w: integers to negative integer powers are not allowed (%d ** %d)", ErrDomain, x, y)
	}
	result := int64(1)
	for y > 0 {
		if y&1 == 1 {
			result *= x
		}
		x *= x
		y >>= 1
	}
	return result, nil
}

// unaryOp describes a scalar math function.
type unaryOp struct {
	name string
	// toFloat makes the result Float64 regardless of input dtype.
	toFloat bool
	// inDomain reports whether x is a valid argument; nil means total.
	inDomain func(x float64) bool
	ints     func(x int64) int64
	floats   func(x float64) float64
}

var (
	opExp = unaryOp{
		name:    "exp",
		toFloat: true,
		floats:  math.Exp,
	}
	opLog = unaryOp{
		name:     "log",
		toFloat:  true,
		inDomain: func(x float64) bool { return !(x <= 0) }, // NaN passes through
		floats:   math.Log,
	}
	opSqrt = unaryOp{
		name:     "sqrt",
		toFloat:  true,
		inDomain: func(x float64) bool { return !(x < 0) },
		floats:   math.Sqrt,
	}
	opAbs = unaryOp{
		name: "abs",
		ints: func(x int64) int64 {
			if x < 0 {
				return -x
			}
			return x
		},
		floats: math.Abs,
	}
)
