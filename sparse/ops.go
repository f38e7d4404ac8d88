// SPDX-License-Identifier: MIT
// Package sparse: arithmetic over coordinate-form matrices.
// Add, Sub and Mul are pure: each validates fail-fast, builds a fresh result
// exclusively through Set (so exact-zero cancellations drop out of storage
// automatically), and never mutates an operand.

package sparse

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAt    = "At"
	opSet   = "Set"
	opAdd   = "Add"
	opSub   = "Sub"
	opMul   = "Mul"
	opParse = "Parse"
	opLoad  = "Load"
	opSave  = "Save"
)

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the
// accumulate loop.
//
// Implementation:
//   - Stage 1: validateSameShape(a, b); allocate result with a's shape.
//   - Stage 2: copy a's non-zero set, then fold b's in via get-then-set.
//
// Determinism:
//   - Both folds walk Entries() (row-major order); with exact integer
//     addition the result is identical under any order, the fixed order is
//     for auditability.
//
// Complexity:
//   - Time O((nnz(a)+nnz(b)) log nnz), Space O(nnz(a)+nnz(b)).
func addSub(a, b *Matrix, sign int64, opTag string) (*Matrix, error) {
	// Validate shapes match
	if err := validateSameShape(a, b); err != nil {
		return nil, sparseErrorf(opTag, err)
	}

	// Allocate result with the common shape.
	res, err := New(a.rows, a.cols)
	if err != nil {
		return nil, sparseErrorf(opTag, err)
	}

	// Seed the result with a's entries (all in-bounds by construction).
	for _, e := range a.Entries() {
		_ = res.Set(e.Row, e.Col, e.Val)
	}

	// Fold b in: read the current cell, write back the signed sum.
	// Set drops entries that cancel to exactly zero.
	var cur int64
	for _, e := range b.Entries() {
		cur, _ = res.At(e.Row, e.Col)
		_ = res.Set(e.Row, e.Col, cur+sign*e.Val)
	}

	return res, nil
}

// Add computes C = A + B and returns a fresh Matrix.
// Fails with ErrDimensionMismatch unless shapes are identical; operands are
// never mutated. Entries that cancel to exactly zero are not stored.
// Complexity: O((nnz(A)+nnz(B)) log nnz).
func (m *Matrix) Add(b *Matrix) (*Matrix, error) { return addSub(m, b, +1, opAdd) }

// Sub computes C = A - B and returns a fresh Matrix.
// Same shape contract as Add. Not commutative: A.Sub(B) != B.Sub(A) in
// general. Complexity: O((nnz(A)+nnz(B)) log nnz).
func (m *Matrix) Sub(b *Matrix) (*Matrix, error) { return addSub(m, b, -1, opSub) }

// Mul computes the sparse product C = A × B.
//
// Implementation:
//   - Stage 1: validateMulCompatible (a.Cols == b.Rows); allocate
//     a.Rows × b.Cols result.
//   - Stage 2: group b's non-zero entries by row once, O(nnz(B)).
//   - Stage 3: for every non-zero (i, k, av) of a, join against b's row k and
//     accumulate av*bv into C[i, j] via get-then-set.
//
// Behavior highlights:
//   - The row grouping only prunes the join; observable results are exactly
//     those of the naive nested scan over both non-zero sets.
//   - Products that accumulate to exactly zero are dropped by Set.
//
// Complexity:
//   - Time O(nnz(A) × maxRowNnz(B)) plus grouping, bounded above by the
//     nested-scan O(nnz(A) × nnz(B)); Space O(nnz(B) + nnz(C)).
func (m *Matrix) Mul(b *Matrix) (*Matrix, error) {
	// Validate inner dimensions via the canonical validator.
	if err := validateMulCompatible(m, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	// Allocate result with the outer shape.
	res, err := New(m.rows, b.cols)
	if err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	// Group b's entries by row for the k-join below.
	byRow := make(map[int][]Entry, b.rows)
	for _, e := range b.Entries() {
		byRow[e.Row] = append(byRow[e.Row], e)
	}

	// Join: every (i, k) of a meets every (k, j) of b.
	var cur int64
	for _, ea := range m.Entries() {
		for _, eb := range byRow[ea.Col] {
			cur, _ = res.At(ea.Row, eb.Col)
			_ = res.Set(ea.Row, eb.Col, cur+ea.Val*eb.Val)
		}
	}

	return res, nil
}
