// SPDX-License-Identifier: MIT
// Package gen: sentinel error set. Constructors MUST return these sentinels
// and tests MUST check them via errors.Is.

package gen

import "errors"

var (
	// ErrInvalidSize indicates a non-positive matrix dimension or an empty
	// diagonal.
	ErrInvalidSize = errors.New("gen: size must be >= 1")

	// ErrInvalidProbability indicates an inclusion probability outside [0, 1].
	ErrInvalidProbability = errors.New("gen: probability must be in [0,1]")

	// ErrInvalidValueRange indicates a value range that is inverted, wider
	// than int64, or contains only zero (which can never be stored).
	ErrInvalidValueRange = errors.New("gen: invalid value range")
)
