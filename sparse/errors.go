// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in private helpers (if any).

package sparse

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with sparseErrorf(tag, err) at the
// facade — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic. The codec
	// returns it in strict-bounds mode for entries beyond the declared header.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrBadFormat is returned by the text codec for any structural violation:
	// missing or malformed header lines, non-positive declared dimensions,
	// malformed entry syntax, non-integer tokens, int64 overflow, negative
	// entry coordinates. Parsing is all-or-nothing; no partial matrix is ever
	// returned alongside this error.
	ErrBadFormat = errors.New("sparse: malformed matrix text")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was
	// passed where a value is required.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNonInteger is returned by gonum ingestion (FromDense) when a source
	// cell holds NaN, ±Inf, a non-integral value, or a magnitude that does
	// not fit int64. The sparse domain is exact integers only.
	ErrNonInteger = errors.New("sparse: non-integer value")
)

// sparseErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As still match the underlying sentinel. Use only when
// err != nil to avoid wrapping a nil cause.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
