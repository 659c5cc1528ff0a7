package ndarray

// Linearize returns the row-major flat offset of a multi-index within shape:
// sum of index[j] * product(shape[j+1:]).
//
// The caller guarantees len(index) == len(shape) and in-range positions.
func Linearize(index []int, shape Shape) int {
	offset := 0
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		offset += index[i] * stride
		stride *= shape[i]
	}
	return offset
}

// Increment advances index to the next multi-index of shape in row-major
// order, odometer style: the last axis moves fastest and carries leftward.
//
// There is no done signal. A full traversal starts at the all-zero index and
// issues exactly shape.NumElements() increments; the last one wraps to zero.
func Increment(index []int, shape Shape) {
	for axis := len(shape) - 1; axis >= 0; axis-- {
		index[axis]++
		if index[axis] < shape[axis] {
			return
		}
		index[axis] = 0
	}
}
