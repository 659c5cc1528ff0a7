package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense converts a rank-2 array (or a rank-1 array, as a single row) into a
// gonum dense matrix. Integer elements are widened to float64.
//
// Rank other than 1 or 2 returns ErrShape. Empty arrays return ErrSize since
// gonum does not allow zero-length matrices.
func (a *Array) ToDense() (*mat.Dense, error) {
	var rows, cols int
	switch len(a.shape) {
	case 1:
		rows, cols = 1, a.shape[0]
	case 2:
		rows, cols = a.shape[0], a.shape[1]
	default:
		return nil, fmt.Errorf("%w: dense conversion needs 1 or 2 dimensions, got shape %v", ErrShape, a.shape)
	}
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: cannot build an empty dense matrix from shape %v", ErrSize, a.shape)
	}
	return mat.NewDense(rows, cols, a.Floats()), nil
}

// FromDense builds a Float64 array of shape (rows, cols) from any gonum matrix.
// The matrix is read through its nested form so that construction goes through New.
func FromDense(m mat.Matrix) (*Array, error) {
	rows, cols := m.Dims()
	items := make([]Value, rows)
	for i := range items {
		row := make([]float64, cols)
		for j := range row {
			row[j] = m.At(i, j)
		}
		items[i] = Floats(row...)
	}
	return New(List(items...))
}
