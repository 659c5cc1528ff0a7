package creation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mininumpy/mininumpy/internal/ndarray"
)

func TestZerosOnes(t *testing.T) {
	z, err := Zeros(2, 3)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2, 3}, z.Shape())
	assert.Equal(t, ndarray.Int64, z.DType())
	assert.Equal(t, "[[0, 0, 0], [0, 0, 0]]", z.String())

	o, err := Ones(3)
	require.NoError(t, err)
	assert.Equal(t, "[1, 1, 1]", o.String())

	s, err := Ones()
	require.NoError(t, err)
	assert.Equal(t, 0, s.NDim())
	assert.Equal(t, "1", s.String())

	e, err := Zeros(2, 0)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Undefined, e.DType())
	assert.Equal(t, "[[], []]", e.String())
}

func TestFull(t *testing.T) {
	f, err := Full(ndarray.Float(0.5), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Float64, f.DType())
	assert.Equal(t, "[[0.5, 0.5], [0.5, 0.5]]", f.String())

	_, err = Full(ndarray.Ints(1), 2)
	assert.ErrorIs(t, err, ndarray.ErrValue)
}

func TestShapeValidation(t *testing.T) {
	_, err := Zeros(2, -1)
	assert.ErrorIs(t, err, ndarray.ErrValue)

	_, err = Zeros(math.MaxInt, 2)
	assert.ErrorIs(t, err, ndarray.ErrSize)

	assert.NoError(t, ValidateShape(nil))
	assert.NoError(t, ValidateShape([]int{0, 3}))
}

func TestEye(t *testing.T) {
	e, err := Eye(3)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3, 3}, e.Shape())

	data, err := e.Ints()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0, 0, 0, 1, 0, 0, 0, 1}, data)

	_, err = Eye(-1)
	assert.ErrorIs(t, err, ndarray.ErrValue)

	empty, err := Eye(0)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{0, 0}, empty.Shape())
	assert.Equal(t, 0, empty.Size())

	_, err = Eye(math.MaxInt)
	assert.ErrorIs(t, err, ndarray.ErrSize)
}

func TestArange(t *testing.T) {
	a, err := Arange(0, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Int64, a.DType())
	data, err := a.Ints()
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 4}, data)

	f, err := Arange(0.0, 1.0, 0.25)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Float64, f.DType())
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, f.Floats())

	empty, err := Arange(int64(3), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Size())
}

func TestArangeErrors(t *testing.T) {
	_, err := Arange(5, 0, 1)
	assert.ErrorIs(t, err, ndarray.ErrRange)

	_, err = Arange(0, 5, 0)
	assert.ErrorIs(t, err, ndarray.ErrRange)

	_, err = Arange(0.0, 5.0, -0.5)
	assert.ErrorIs(t, err, ndarray.ErrRange)

	// Bounds that collapse to the same float64 are still compared exactly.
	_, err = Arange(int64(math.MaxInt64), math.MaxInt64-1, 1)
	assert.ErrorIs(t, err, ndarray.ErrRange)

	for _, bounds := range [][3]float64{
		{0, math.Inf(1), 1},
		{math.Inf(-1), 0, 1},
		{0, 1, math.Inf(1)},
		{math.NaN(), 1, 1},
	} {
		_, err = Arange(bounds[0], bounds[1], bounds[2])
		assert.ErrorIs(t, err, ndarray.ErrRange, "bounds %v", bounds)
	}

	_, err = Arange(-math.MaxFloat64, math.MaxFloat64, 1)
	assert.ErrorIs(t, err, ndarray.ErrSize)

	_, err = Arange(int64(math.MinInt64), math.MaxInt64, 1)
	assert.ErrorIs(t, err, ndarray.ErrSize)
}

func TestArangeNearInt64Limits(t *testing.T) {
	a, err := Arange(int64(math.MaxInt64-1), math.MaxInt64, 2)
	require.NoError(t, err)
	data, err := a.Ints()
	require.NoError(t, err)
	assert.Equal(t, []int64{math.MaxInt64 - 1}, data)

	b, err := Arange(int64(math.MaxInt64-5), math.MaxInt64, 2)
	require.NoError(t, err)
	data, err = b.Ints()
	require.NoError(t, err)
	assert.Equal(t, []int64{math.MaxInt64 - 5, math.MaxInt64 - 3, math.MaxInt64 - 1}, data)

	c, err := Arange(int64(math.MinInt64), math.MinInt64+3, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Size())
}

func TestLinspace(t *testing.T) {
	a, err := Linspace(0, 10, 4)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Float64, a.DType())
	assert.Equal(t, []float64{0, 2.5, 5, 7.5}, a.Floats())
	assert.Equal(t, "[0.0, 2.5, 5.0, 7.5]", a.String())

	_, err = Linspace(10, 0, 4)
	assert.ErrorIs(t, err, ndarray.ErrRange)

	_, err = Linspace(0, 10, 0)
	assert.ErrorIs(t, err, ndarray.ErrRange)

	_, err = Linspace(0, math.Inf(1), 4)
	assert.ErrorIs(t, err, ndarray.ErrRange)
}
