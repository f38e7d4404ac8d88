// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep accessors/operations minimal by delegating nil/bounds/shape checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package sparse

// validateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func validateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix // single source of truth for "nil argument"
	}

	return nil
}

// validateIndex ensures m is non-nil and (row, col) lies inside m's bounds.
// Returns ErrNilMatrix or ErrOutOfRange. Complexity: O(1).
func validateIndex(m *Matrix, row, col int) error {
	// Nil receiver first: bounds are meaningless without a matrix.
	if err := validateNotNil(m); err != nil {
		return err
	}
	// Validate row index.
	if row < 0 || row >= m.rows {
		return ErrOutOfRange
	}
	// Validate column index.
	if col < 0 || col >= m.cols {
		return ErrOutOfRange
	}

	return nil
}

// validateSameShape ensures a and b are non-nil and share dimensions.
// Used by Add/Sub. Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(1).
func validateSameShape(a, b *Matrix) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMulCompatible ensures a and b are non-nil and a.cols == b.rows,
// the inner-dimension contract of matrix multiplication.
// Returns ErrNilMatrix or ErrDimensionMismatch. Complexity: O(1).
func validateMulCompatible(a, b *Matrix) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}

	return nil
}
