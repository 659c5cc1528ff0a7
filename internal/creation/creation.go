// Package creation provides convenience constructors for arrays.
//
// Every builder assembles a nested value and hands it to ndarray.New, so the
// resulting arrays go through the same validation as user data.
package creation

import (
	"math"

	"github.com/mininumpy/mininumpy/internal/ndarray"
)

// Number is the set of scalar types accepted by Arange.
type Number interface {
	int | int64 | float64
}

// Zeros returns an Int64 array of the given shape filled with 0.
//
// Example:
//
//	z, err := creation.Zeros(2, 3) // [[0, 0, 0], [0, 0, 0]]
func Zeros(shape ...int) (*ndarray.Array, error) {
	return Full(ndarray.Int(0), shape...)
}

// Ones returns an Int64 array of the given shape filled with 1.
func Ones(shape ...int) (*ndarray.Array, error) {
	return Full(ndarray.Int(1), shape...)
}

// Full returns an array of the given shape with every element set to value.
// An empty shape yields a scalar; a zero-length axis yields an empty array.
func Full(value ndarray.Value, shape ...int) (*ndarray.Array, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, err
	}
	if !value.IsScalar() {
		return nil, errorf(ndarray.ErrValue, "fill value must be a scalar, got %v", value)
	}

	current := value
	for i := len(shape) - 1; i >= 0; i-- {
		items := make([]ndarray.Value, shape[i])
		for j := range items {
			items[j] = current
		}
		current = ndarray.List(items...)
	}
	return ndarray.New(current)
}

// Eye returns the (n, n) Int64 identity matrix. Eye(0) has shape (0, 0).
func Eye(n int) (*ndarray.Array, error) {
	if n < 0 {
		return nil, errorf(ndarray.ErrValue, "eye size must be non-negative, got %d", n)
	}
	if err := ValidateShape([]int{n, n}); err != nil {
		return nil, err
	}
	rows := make([]ndarray.Value, n)
	for i := range rows {
		row := make([]int64, n)
		row[i] = 1
		rows[i] = ndarray.Ints(row...)
	}
	a, err := ndarray.New(ndarray.List(rows...))
	if err != nil {
		return nil, err
	}
	// An empty nested list only describes (0,).
	return a.Reshape(n, n)
}

// Arange returns the values start, start+step, ... strictly below stop.
// Integer arguments give an Int64 array, float arguments a Float64 array.
// Float bounds and steps must be finite.
//
// Example:
//
//	a, err := creation.Arange(0, 5, 2)        // [0, 2, 4]
//	b, err := creation.Arange(0.0, 1.0, 0.25) // [0.0, 0.25, 0.5, 0.75]
func Arange[T Number](start, stop, step T) (*ndarray.Array, error) {
	if start > stop {
		return nil, errorf(ndarray.ErrRange, "start %v > stop %v", start, stop)
	}
	if !(step > 0) {
		return nil, errorf(ndarray.ErrRange, "step must be > 0, got %v", step)
	}

	switch s := any(start).(type) {
	case float64:
		return arangeFloat(s, float64(stop), float64(step))
	default:
		return arangeInt(int64(start), int64(stop), int64(step))
	}
}

// arangeInt counts the elements in unsigned arithmetic, so ranges spanning
// most of int64 neither overflow nor loop forever.
func arangeInt(start, stop, step int64) (*ndarray.Array, error) {
	span := uint64(stop) - uint64(start)
	count := span / uint64(step)
	if span%uint64(step) != 0 {
		count++
	}
	if count > uint64(maxElements) {
		return nil, errorf(ndarray.ErrSize, "arange(%d, %d, %d) has %d elements", start, stop, step, count)
	}

	values := make([]int64, count)
	for i := range values {
		values[i] = int64(uint64(start) + uint64(i)*uint64(step))
	}
	return ndarray.New(ndarray.Ints(values...))
}

func arangeFloat(start, stop, step float64) (*ndarray.Array, error) {
	if err := CheckFinite(start, stop, step); err != nil {
		return nil, err
	}
	count := math.Ceil((stop - start) / step)
	if !(count <= float64(maxElements)) {
		return nil, errorf(ndarray.ErrSize, "arange(%v, %v, %v) has too many elements", start, stop, step)
	}

	values := make([]float64, 0, int(count))
	for i := 0; i <= int(count); i++ {
		v := start + step*float64(i)
		if v >= stop {
			break
		}
		values = append(values, v)
	}
	return ndarray.New(ndarray.Floats(values...))
}

// Linspace returns num evenly spaced Float64 values over [start, stop):
// start + i*(stop-start)/num for i in 0..num-1.
//
// Example:
//
//	a, err := creation.Linspace(0, 10, 4) // [0.0, 2.5, 5.0, 7.5]
func Linspace(start, stop float64, num int) (*ndarray.Array, error) {
	if err := CheckFinite(start, stop); err != nil {
		return nil, err
	}
	if err := CheckRange(start, stop); err != nil {
		return nil, err
	}
	if err := CheckPositive(float64(num), "num"); err != nil {
		return nil, err
	}

	diff := (stop - start) / float64(num)
	values := make([]float64, num)
	for i := range values {
		values[i] = start + diff*float64(i)
	}
	return ndarray.New(ndarray.Floats(values...))
}
