package creation

import (
	"fmt"
	"math"

	"github.com/mininumpy/mininumpy/internal/ndarray"
)

// maxElements caps the length of generated ranges.
const maxElements = math.MaxInt32

// ValidateShape checks that every axis length is non-negative and that the
// element count fits in an int.
func ValidateShape(shape []int) error {
	for i, dim := range shape {
		if dim < 0 {
			return errorf(ndarray.ErrValue, "expected a shape of non-negative ints, axis %d is %d", i, dim)
		}
	}
	return ndarray.Shape(shape).Validate()
}

// CheckRange fails with ErrRange when start > stop.
func CheckRange(start, stop float64) error {
	if start > stop {
		return errorf(ndarray.ErrRange, "start %v > stop %v", start, stop)
	}
	return nil
}

// CheckPositive fails with ErrRange when number <= 0.
func CheckPositive(number float64, name string) error {
	if !(number > 0) {
		return errorf(ndarray.ErrRange, "%s must be > 0, got %v", name, number)
	}
	return nil
}

// CheckFinite fails with ErrRange when any bound is NaN or infinite.
func CheckFinite(bounds ...float64) error {
	for _, b := range bounds {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return errorf(ndarray.ErrRange, "bounds must be finite, got %v", b)
		}
	}
	return nil
}

func errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
