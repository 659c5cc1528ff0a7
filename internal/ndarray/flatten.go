package ndarray

import "fmt"

// Flatten collects the scalar leaves of v depth-first, left to right. The
// order matches row-major offsets. A scalar flattens to a one-item slice.
func Flatten(v Value) []Value {
	return appendLeaves(nil, v)
}

func appendLeaves(dst []Value, v Value) []Value {
	if v.IsScalar() {
		return append(dst, v)
	}
	for _, item := range v.items {
		dst = appendLeaves(dst, item)
	}
	return dst
}

// Unflatten rebuilds the nested form of flat under shape. It is the inverse
// of Flatten for every value InferShape accepts.
//
// Shape () yields the single scalar itself, a one-axis shape yields a flat
// list, deeper shapes split flat into shape[0] equal chunks recursively.
func Unflatten(flat []Value, shape Shape) (Value, error) {
	if err := shape.Validate(); err != nil {
		return Value{}, err
	}
	if want := shape.NumElements(); len(flat) != want {
		return Value{}, fmt.Errorf("%w: %d elements do not fit shape %v (size %d)", ErrSize, len(flat), shape, want)
	}
	return unflatten(flat, shape), nil
}

func unflatten(flat []Value, shape Shape) Value {
	switch len(shape) {
	case 0:
		return flat[0]
	case 1:
		return List(flat...)
	}

	sub := shape[1:]
	step := sub.NumElements()
	items := make([]Value, shape[0])
	for i := range items {
		items[i] = unflatten(flat[i*step:(i+1)*step], sub)
	}
	return Value{kind: kindList, items: items}
}
