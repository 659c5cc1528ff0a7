package ndarray

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mustFromAny builds an array from Go values, failing the test on error.
func mustFromAny(t *testing.T, x any, opts ...Option) *Array {
	t.Helper()
	a, err := FromAny(x, opts...)
	require.NoError(t, err)
	return a
}

// mustInts returns the int64 data of a, failing the test on error.
func mustInts(t *testing.T, a *Array) []int64 {
	t.Helper()
	data, err := a.Ints()
	require.NoError(t, err)
	return data
}

func assertEqualShape(t *testing.T, expected, actual Shape) {
	t.Helper()
	require.True(t, expected.Equal(actual), "expected shape %v, got %v", expected, actual)
}
