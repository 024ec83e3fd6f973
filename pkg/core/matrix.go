package core

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrDimensionMismatch is returned when sequence lengths or matrix shapes disagree.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// Zeros allocates an r x c zero matrix.
func Zeros(r, c int) (*mat.Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("%w: cannot allocate %dx%d matrix", ErrDimensionMismatch, r, c)
	}
	return mat.NewDense(r, c, nil), nil
}

// FromSlice creates a matrix from a nested slice (copies data).
func FromSlice(a [][]float64) (*mat.Dense, error) {
	if len(a) == 0 || len(a[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrDimensionMismatch)
	}
	c := len(a[0])
	if err := CheckWidth(a, c); err != nil {
		return nil, err
	}
	m := mat.NewDense(len(a), c, nil)
	for i, row := range a {
		m.SetRow(i, row)
	}
	return m, nil
}

// Rows copies m into a nested slice, one entry per row.
func Rows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := range r {
		out[i] = make([]float64, c)
		for j := range c {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

// CheckWidth verifies every row of X has exactly width entries.
func CheckWidth(X [][]float64, width int) error {
	for i, row := range X {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrDimensionMismatch, i, len(row), width)
		}
	}
	return nil
}

// ArgMax returns the first index holding the maximum of v, or -1 for an empty v.
func ArgMax(v []float64) int {
	if len(v) == 0 {
		return -1
	}
	return floats.MaxIdx(v)
}
