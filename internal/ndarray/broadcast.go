package ndarray

import "fmt"

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Axes present only in the longer shape pass through unchanged
//
// The broadcast length of a compatible pair is the non-1 length, so (0,)
// against (1,) gives (0,).
//
// Examples:
//
//	(3, 1) + (1, 4) → (3, 4)
//	(2, 3) + (3,)   → (2, 3)
//	(2, 3) + (4,)   → ErrBroadcast
func BroadcastShapes(a, b Shape) (Shape, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
		case bDim == 1:
			result[maxLen-1-i] = aDim
		default:
			return nil, fmt.Errorf("%w: %v vs %v (axis %d: %d vs %d)",
				ErrBroadcast, a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, nil
}

// MapBack maps a multi-index of the joint broadcast shape onto an operand of
// shape operand, writing the result into dst (len(dst) == len(operand)).
// Leading joint axes without a counterpart are dropped and size-1 operand
// axes are pinned to 0.
func MapBack(joint []int, operand Shape, dst []int) {
	offset := len(joint) - len(operand)
	for i, dim := range operand {
		if dim == 1 {
			dst[i] = 0
			continue
		}
		dst[i] = joint[offset+i]
	}
}

// binaryKernel computes one output element from flat offsets into a and b.
type binaryKernel func(a, b *Array, ai, bi int, out *Array, oi int) error

// applyBinary broadcasts a and b to their joint shape and fills a fresh
// array of dtype by walking every joint multi-index in row-major order.
// Equal shapes take the same path: they are the trivial broadcast.
func applyBinary(a, b *Array, dtype DataType, kernel binaryKernel) (*Array, error) {
	joint, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}

	out := newArray(joint, dtype)
	size := joint.NumElements()
	if size == 0 || dtype == Undefined {
		return out, nil
	}

	index := make([]int, len(joint))
	aIndex := make([]int, len(a.shape))
	bIndex := make([]int, len(b.shape))
	for n := 0; n < size; n++ {
		MapBack(index, a.shape, aIndex)
		MapBack(index, b.shape, bIndex)
		ai := Linearize(aIndex, a.shape)
		bi := Linearize(bIndex, b.shape)
		if err := kernel(a, b, ai, bi, out, Linearize(index, joint)); err != nil {
			return nil, err
		}
		Increment(index, joint)
	}
	return out, nil
}
