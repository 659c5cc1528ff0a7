package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferShape(t *testing.T) {
	tests := []struct {
		name  string
		v     Value
		shape Shape
		dtype DataType
	}{
		{"int scalar", Int(7), Shape{}, Int64},
		{"float scalar", Float(7.5), Shape{}, Float64},
		{"empty list", List(), Shape{0}, Undefined},
		{"list of empty lists", List(List(), List()), Shape{2, 0}, Undefined},
		{"vector", Ints(1, 2, 3), Shape{3}, Int64},
		{"matrix", List(Ints(1, 2), Ints(3, 4), Ints(5, 6)), Shape{3, 2}, Int64},
		{
			"3d",
			List(
				List(Ints(1, 2), Ints(3, 4), Ints(5, 6)),
				List(Ints(7, 8), Ints(9, 10), Ints(11, 12)),
			),
			Shape{2, 3, 2},
			Int64,
		},
		{"float matrix", List(Floats(1, 2), Floats(3, 4)), Shape{2, 2}, Float64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, dtype, err := InferShape(tt.v, StrictNumeric)
			require.NoError(t, err)
			assertEqualShape(t, tt.shape, shape)
			assert.Equal(t, tt.dtype, dtype)
		})
	}
}

func TestInferShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want error
	}{
		{"jagged", List(Ints(1, 2), Ints(3)), ErrShape},
		{"scalar next to list", List(Int(1), Ints(2)), ErrShape},
		{"deep jagged", List(List(Ints(1, 2)), List(Ints(1, 2), Ints(3, 4))), ErrShape},
		{"empty next to full", List(List(), Ints(1)), ErrShape},
		{"mixed leaves", List(Int(1), Float(2)), ErrType},
		{"mixed rows", List(Ints(1, 2), Floats(3, 4)), ErrType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := InferShape(tt.v, StrictNumeric)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestInferShapeNumericPolicy(t *testing.T) {
	mixed := List(Int(1), Float(2))

	t.Run("strict rejects int/float mix", func(t *testing.T) {
		_, _, err := InferShape(mixed, StrictNumeric)
		assert.ErrorIs(t, err, ErrType)
	})

	t.Run("promote unifies to float", func(t *testing.T) {
		shape, dtype, err := InferShape(mixed, PromoteNumeric)
		require.NoError(t, err)
		assertEqualShape(t, Shape{2}, shape)
		assert.Equal(t, Float64, dtype)
	})

	t.Run("promote across rows", func(t *testing.T) {
		_, dtype, err := InferShape(List(Ints(1, 2), Floats(3, 4)), PromoteNumeric)
		require.NoError(t, err)
		assert.Equal(t, Float64, dtype)
	})

	t.Run("promote still checks shape", func(t *testing.T) {
		_, _, err := InferShape(List(Ints(1, 2), Floats(3)), PromoteNumeric)
		assert.ErrorIs(t, err, ErrShape)
	})
}

func TestParseNumericPolicy(t *testing.T) {
	p, err := ParseNumericPolicy("promote")
	require.NoError(t, err)
	assert.Equal(t, PromoteNumeric, p)

	p, err = ParseNumericPolicy("")
	require.NoError(t, err)
	assert.Equal(t, StrictNumeric, p)
	assert.Equal(t, "strict", p.String())

	_, err = ParseNumericPolicy("loose")
	assert.ErrorIs(t, err, ErrValue)
}

func TestFlatten(t *testing.T) {
	v := List(List(Ints(1, 2), Ints(3, 4)), List(Ints(5, 6), Ints(7, 8)))
	flat := Flatten(v)

	assert.Equal(t, "[1, 2, 3, 4, 5, 6, 7, 8]", List(flat...).String())
	assert.Len(t, Flatten(Int(3)), 1)
	assert.Empty(t, Flatten(List(List(), List())))
}

func TestUnflattenRoundTrip(t *testing.T) {
	values := []Value{
		Int(7),
		Float(1.5),
		List(),
		List(List(), List()),
		Ints(1, 2, 3),
		List(Ints(1, 2), Ints(3, 4), Ints(5, 6)),
		List(
			List(Ints(1, 2), Ints(3, 4), Ints(5, 6)),
			List(Ints(7, 8), Ints(9, 10), Ints(11, 12)),
		),
		List(List(Floats(0.5)), List(Floats(1.5))),
	}

	for _, v := range values {
		t.Run(v.String(), func(t *testing.T) {
			shape, _, err := InferShape(v, StrictNumeric)
			require.NoError(t, err)

			got, err := Unflatten(Flatten(v), shape)
			require.NoError(t, err)
			assert.True(t, v.Equal(got), "round trip: want %v, got %v", v, got)
		})
	}
}

func TestUnflattenSizeError(t *testing.T) {
	_, err := Unflatten([]Value{Int(1), Int(2), Int(3)}, Shape{2, 2})
	assert.ErrorIs(t, err, ErrSize)

	_, err = Unflatten(nil, Shape{})
	assert.ErrorIs(t, err, ErrSize)

	_, err = Unflatten(nil, Shape{-1})
	assert.ErrorIs(t, err, ErrSize)
}

func TestUnflattenShapes(t *testing.T) {
	flat := Flatten(Ints(1, 2, 3, 4, 5, 6))

	got, err := Unflatten(flat, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, "[[1, 2, 3], [4, 5, 6]]", got.String())

	got, err = Unflatten(flat, Shape{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, "[[[1, 2]], [[3, 4]], [[5, 6]]]", got.String())

	got, err = Unflatten(flat[:1], Shape{})
	require.NoError(t, err)
	assert.Equal(t, "1", got.String())
}
