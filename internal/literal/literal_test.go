package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mininumpy/mininumpy/internal/ndarray"
)

func TestParse(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"7", "7"},
		{"-3", "-3"},
		{"2.5", "2.5"},
		{"[1, 2, 3]", "[1, 2, 3]"},
		{"[[1, 2], [3, 4]]", "[[1, 2], [3, 4]]"},
		{"[[1.5, 2.0], [3.0, 4.0]]", "[[1.5, 2.0], [3.0, 4.0]]"},
		{"[]", "[]"},
		{"[[], []]", "[[], []]"},
		{"  [ -1 , 0 ]  ", "[-1, 0]"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			v, err := Parse(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"",
		"   ",
		"hello",
		"[1, two]",
		"{a: 1}",
		"[1, [2",
		"null",
	} {
		_, err := Parse(src)
		assert.ErrorIs(t, err, ndarray.ErrValue, "src %q", src)
	}
}

func TestParseArray(t *testing.T) {
	a, err := ParseArray("[[1, 2], [3, 4], [5, 6]]")
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3, 2}, a.Shape())
	assert.Equal(t, ndarray.Int64, a.DType())

	_, err = ParseArray("[[1, 2], [3]]")
	assert.ErrorIs(t, err, ndarray.ErrShape)

	_, err = ParseArray("[1, 2.5]")
	assert.ErrorIs(t, err, ndarray.ErrType)

	b, err := ParseArray("[1, 2.5]", ndarray.WithNumericPolicy(ndarray.PromoteNumeric))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5}, b.Floats())
}
