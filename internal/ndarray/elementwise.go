package ndarray

import (
	"fmt"
	"sync/atomic"

	"github.com/mininumpy/mininumpy/internal/parallel"
)

var parallelism atomic.Pointer[parallel.Config]

func init() {
	cfg := parallel.Sequential()
	parallelism.Store(&cfg)
}

// SetParallelism configures how unary maps spread work across goroutines.
// The default is parallel.Sequential(). Results do not depend on the setting.
func SetParallelism(cfg parallel.Config) {
	parallelism.Store(&cfg)
}

// Parallelism returns the current unary map configuration.
func Parallelism() parallel.Config {
	return *parallelism.Load()
}

// apply maps op over every element into a fresh array.
// Domain is checked up front so that no partial result is ever built.
func (a *Array) apply(op unaryOp) (*Array, error) {
	if op.inDomain != nil {
		for i := 0; i < a.Size(); i++ {
			if x := a.floatAt(i); !op.inDomain(x) {
				return nil, fmt.Errorf("%w: %s(%s)", ErrDomain, op.name, formatFloat(x))
			}
		}
	}

	dtype := a.dtype
	if op.toFloat {
		dtype = Float64
	}
	out := newArray(a.shape, dtype)
	cfg := Parallelism()

	switch dtype {
	case Int64:
		parallel.ForRange(len(out.ints), func(start, end int) {
			for i := start; i < end; i++ {
				out.ints[i] = op.ints(a.ints[i])
			}
		}, cfg)
	case Float64:
		parallel.ForRange(len(out.floats), func(start, end int) {
			for i := start; i < end; i++ {
				out.floats[i] = op.floats(a.floatAt(i))
			}
		}, cfg)
	}
	return out, nil
}

// Exp returns e**x for every element. The result is Float64.
func (a *Array) Exp() (*Array, error) {
	return a.apply(opExp)
}

// Log returns the natural logarithm of every element. The result is Float64.
// Non-positive elements return ErrDomain.
func (a *Array) Log() (*Array, error) {
	return a.apply(opLog)
}

// Sqrt returns the square root of every element. The result is Float64.
// Negative elements return ErrDomain.
func (a *Array) Sqrt() (*Array, error) {
	return a.apply(opSqrt)
}

// Abs returns the absolute value of every element, preserving dtype.
func (a *Array) Abs() *Array {
	out, _ := a.apply(opAbs) // abs is total
	return out
}

// binary broadcasts a against other and applies op.
func (a *Array) binary(op binaryOp, other *Array) (*Array, error) {
	dtype := op.resultType(a.dtype, other.dtype)
	out, err := applyBinary(a, other, dtype, op.kernel(dtype))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op.name, err)
	}
	return out, nil
}

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := ... // shape (3, 1)
//	b := ... // shape (1, 4)
//	c, err := a.Add(b) // shape (3, 4)
func (a *Array) Add(other *Array) (*Array, error) {
	return a.binary(opAdd, other)
}

// Sub performs element-wise subtraction with broadcasting.
func (a *Array) Sub(other *Array) (*Array, error) {
	return a.binary(opSub, other)
}

// Mul performs element-wise multiplication with broadcasting.
func (a *Array) Mul(other *Array) (*Array, error) {
	return a.binary(opMul, other)
}

// Div performs element-wise true division with broadcasting.
// The result is always Float64; division by zero yields ±Inf or NaN.
func (a *Array) Div(other *Array) (*Array, error) {
	return a.binary(opDiv, other)
}

// Pow raises every element to the matching power with broadcasting.
// Integer arrays raised to negative integer powers return ErrDomain.
func (a *Array) Pow(other *Array) (*Array, error) {
	return a.binary(opPow, other)
}

// Exp returns a copy of a with elements e**x.
func Exp(a *Array) (*Array, error) { return a.Exp() }

// Log returns a copy of a with elements ln(x).
func Log(a *Array) (*Array, error) { return a.Log() }

// Sqrt returns a copy of a with elements sqrt(x).
func Sqrt(a *Array) (*Array, error) { return a.Sqrt() }

// Abs returns a copy of a with elements |x|.
func Abs(a *Array) *Array { return a.Abs() }

// Add returns a + b with broadcasting.
func Add(a, b *Array) (*Array, error) { return a.Add(b) }

// Sub returns a - b with broadcasting.
func Sub(a, b *Array) (*Array, error) { return a.Sub(b) }

// Mul returns a * b with broadcasting.
func Mul(a, b *Array) (*Array, error) { return a.Mul(b) }

// Div returns a / b with broadcasting.
func Div(a, b *Array) (*Array, error) { return a.Div(b) }

// Pow returns a ** b with broadcasting.
func Pow(a, b *Array) (*Array, error) { return a.Pow(b) }
