package ndarray

import "errors"

// Sentinel errors. Every error returned by this package wraps exactly one of
// them, so callers match with errors.Is.
var (
	// ErrShape is returned when sublists at the same depth have different shapes,
	// or when an operation requires a rank the array does not have.
	ErrShape = errors.New("ndarray: inconsistent shape")

	// ErrType is returned when leaves or sublists disagree on element type.
	ErrType = errors.New("ndarray: inconsistent type")

	// ErrSize is returned when a target shape does not hold the actual element count.
	ErrSize = errors.New("ndarray: size mismatch")

	// ErrPermutation is returned when transpose axes are not a bijection on 0..ndim-1.
	ErrPermutation = errors.New("ndarray: invalid permutation")

	// ErrBroadcast is returned when two shapes cannot be aligned for broadcasting.
	ErrBroadcast = errors.New("ndarray: shapes cannot be broadcast")

	// ErrRange is returned when builder preconditions on ranges, steps or counts fail.
	ErrRange = errors.New("ndarray: invalid range")

	// ErrDomain is returned when a math function receives an out-of-domain value.
	ErrDomain = errors.New("ndarray: math domain error")

	// ErrValue is returned when an input is neither a sequence nor a number.
	ErrValue = errors.New("ndarray: invalid value")

	// ErrIndex is returned when a multi-index is out of bounds.
	ErrIndex = errors.New("ndarray: index out of range")
)
