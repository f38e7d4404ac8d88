// SPDX-License-Identifier: MIT

// Package sparse: converters between coordinate-form matrices and gonum's
// dense representation, plus a zero-copy float view for feeding sparse data
// into gonum routines directly.
package sparse

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Conversion operation tags.
const (
	opToDense   = "ToDense"
	opFromDense = "FromDense"
)

// ToDense expands m into a gonum *mat.Dense of the same shape, with every
// absent entry materialized as 0.
//
// Time Complexity: O(rows*cols) zeroing + O(nnz) writes.
// Memory: O(rows*cols).
func ToDense(m *Matrix) (*mat.Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, sparseErrorf(opToDense, err)
	}

	d := mat.NewDense(m.rows, m.cols, nil)
	for _, e := range m.Entries() {
		d.Set(e.Row, e.Col, float64(e.Val))
	}

	return d, nil
}

// FromDense ingests any gonum mat.Matrix into coordinate form, storing only
// the non-zero cells. The sparse domain is exact integers: a cell holding
// NaN, ±Inf, a fractional value, or a magnitude beyond int64 fails with
// ErrNonInteger and no matrix is returned.
//
// Time Complexity: O(rows*cols).
// Memory: O(nnz).
func FromDense(d mat.Matrix) (*Matrix, error) {
	if d == nil {
		return nil, sparseErrorf(opFromDense, ErrNilMatrix)
	}

	rows, cols := d.Dims()
	m, err := New(rows, cols)
	if err != nil {
		return nil, sparseErrorf(opFromDense, err)
	}

	// Fixed i→j order; every cell is validated, zeros are skipped.
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v = d.At(i, j)
			if v == 0 {
				continue
			}
			if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) ||
				v < math.MinInt64 || v >= math.MaxInt64 {
				return nil, sparseErrorf(opFromDense, ErrNonInteger)
			}
			_ = m.Set(i, j, int64(v)) // in-bounds by construction
		}
	}

	return m, nil
}

// FloatView adapts a *Matrix to gonum's mat.Matrix interface without copying:
// reads go straight to the sparse storage, absent cells read as 0. The view
// shares the underlying matrix; mutating it while gonum iterates is the
// caller's concern (single-owner model).
type FloatView struct {
	M *Matrix
}

// Dims returns the dimensions of the viewed matrix.
func (v FloatView) Dims() (r, c int) {
	return v.M.rows, v.M.cols
}

// At returns the value at (i, j) as a float64. Like every gonum matrix it
// panics on out-of-range indices — the bounds-checked path is Matrix.At.
func (v FloatView) At(i, j int) float64 {
	if i < 0 || i >= v.M.rows || j < 0 || j >= v.M.cols {
		panic(ErrOutOfRange)
	}

	return float64(v.M.elems[coord{i, j}])
}

// T returns the transpose of the view, following the gonum convention of a
// lazy transpose wrapper.
func (v FloatView) T() mat.Matrix {
	return mat.Transpose{Matrix: v}
}
