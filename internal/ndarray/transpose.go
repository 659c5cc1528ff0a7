package ndarray

import "fmt"

// Transpose permutes the axes of the array.
//
// With no axes it reverses all of them; for 2D arrays this is the standard
// matrix transpose. Otherwise axes must list every axis 0..NDim()-1 exactly
// once, and axis i of the result is axis axes[i] of the input.
//
// Example:
//
//	a := ... // shape (2, 3, 4)
//	b, err := a.Transpose(2, 0, 1) // shape (4, 2, 3)
func (a *Array) Transpose(axes ...int) (*Array, error) {
	ndim := len(a.shape)
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if err := validatePermutation(axes, ndim); err != nil {
		return nil, err
	}

	newShape := make(Shape, ndim)
	for i, ax := range axes {
		newShape[i] = a.shape[ax]
	}

	out := newArray(newShape, a.dtype)
	size := a.Size()
	index := make([]int, ndim)
	permuted := make([]int, ndim)
	for n := 0; n < size; n++ {
		for i, ax := range axes {
			permuted[i] = index[ax]
		}
		src := Linearize(index, a.shape)
		dst := Linearize(permuted, newShape)
		switch a.dtype {
		case Int64:
			out.ints[dst] = a.ints[src]
		case Float64:
			out.floats[dst] = a.floats[src]
		}
		Increment(index, a.shape)
	}
	return out, nil
}

// InversePermutation returns the permutation that undoes axes, so that
// a.Transpose(axes...).Transpose(inverse...) equals a.
func InversePermutation(axes []int) ([]int, error) {
	if err := validatePermutation(axes, len(axes)); err != nil {
		return nil, err
	}
	inverse := make([]int, len(axes))
	for i, ax := range axes {
		inverse[ax] = i
	}
	return inverse, nil
}

func validatePermutation(axes []int, ndim int) error {
	if len(axes) != ndim {
		return fmt.Errorf("%w: got %d axes for an array with %d dimensions", ErrPermutation, len(axes), ndim)
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			return fmt.Errorf("%w: axis %d out of range for %d dimensions", ErrPermutation, ax, ndim)
		}
		if seen[ax] {
			return fmt.Errorf("%w: axis %d repeated in %v", ErrPermutation, ax, axes)
		}
		seen[ax] = true
	}
	return nil
}
