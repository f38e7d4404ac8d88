// SPDX-License-Identifier: MIT
// Package: gen
//
// gen.go - Identity, Diagonal and RandomSparse constructors.
//
// Contract:
//   - Dimensions ≥ 1 (else ErrInvalidSize).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Sampled values come from [valMin, valMax] with zero re-rolled, so the
//     sparsity invariant of the result needs no special casing.
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Stable trial order: for each row i asc, column j asc.
//   - Deterministic outcomes for a fixed seed and option set.

package gen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sparsemat/sparse"
)

// File-local constants (no magic literals; stable method tags and domains).
const (
	methodIdentity     = "Identity"
	methodDiagonal     = "Diagonal"
	methodRandomSparse = "RandomSparse"

	minDimension = 1
	probMin      = 0.0
	probMax      = 1.0
	identityOne  = int64(1)
)

// Identity returns the n×n identity matrix (ones on the diagonal).
// Complexity: O(n) writes.
func Identity(n int) (*sparse.Matrix, error) {
	// Validate dimension domain early (fail fast, zero side effects).
	if n < minDimension {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodIdentity, n, minDimension, ErrInvalidSize)
	}

	m, err := sparse.New(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodIdentity, err)
	}
	// Stable diagonal walk: i asc.
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, identityOne) // in-bounds by construction
	}

	return m, nil
}

// Diagonal returns the len(vals)×len(vals) matrix carrying vals on its
// diagonal. Zeros in vals simply leave holes — the result stores exactly the
// non-zero values. Complexity: O(len(vals)).
func Diagonal(vals ...int64) (*sparse.Matrix, error) {
	n := len(vals)
	if n < minDimension {
		return nil, fmt.Errorf("%s: empty diagonal: %w", methodDiagonal, ErrInvalidSize)
	}

	m, err := sparse.New(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDiagonal, err)
	}
	// Stable diagonal walk: i asc; Set discards the zeros for us.
	for i, v := range vals {
		_ = m.Set(i, i, v)
	}

	return m, nil
}

// RandomSparse samples a rows×cols matrix including each cell independently
// with probability p (Bernoulli per cell, Erdős–Rényi-like) and a value
// drawn uniformly from the configured range, re-rolled while zero.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrInvalidSize).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Value range must be ordered and contain a non-zero (else
//     ErrInvalidValueRange).
//
// Determinism:
//   - Fixed trial order (i asc, then j asc) and an explicit seed give
//     identical matrices across runs.
//
// Complexity: O(rows*cols) Bernoulli trials.
func RandomSparse(rows, cols int, p float64, opts ...Option) (*sparse.Matrix, error) {
	// 1) Validate parameters early.
	if rows < minDimension || cols < minDimension {
		return nil, fmt.Errorf("%s: %dx%d below min=%d: %w",
			methodRandomSparse, rows, cols, minDimension, ErrInvalidSize)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}

	// 2) Resolve options and validate the value range.
	o := gatherOptions(opts...)
	spread := o.valMax - o.valMin + 1
	if o.valMin > o.valMax || spread <= 0 {
		return nil, fmt.Errorf("%s: [%d,%d]: %w",
			methodRandomSparse, o.valMin, o.valMax, ErrInvalidValueRange)
	}
	if o.valMin == 0 && o.valMax == 0 {
		return nil, fmt.Errorf("%s: zero-only range: %w",
			methodRandomSparse, ErrInvalidValueRange)
	}

	m, err := sparse.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
	}

	// 3) Sample cells with a stable, documented order.
	rng := rand.New(rand.NewSource(o.seed))
	var i, j int
	for i = 0; i < rows; i++ { // stable outer loop: i asc
		for j = 0; j < cols; j++ { // inner loop: j asc
			// Bernoulli trial: include cell with probability p.
			if p == probMin {
				continue // deterministic empty set, RNG untouched for values
			}
			if p < probMax && rng.Float64() >= p {
				continue
			}
			_ = m.Set(i, j, drawNonZero(rng, o.valMin, spread))
		}
	}

	return m, nil
}

// drawNonZero samples uniformly from [lo, lo+spread) until the draw is
// non-zero. The caller guarantees the range contains a non-zero value.
func drawNonZero(rng *rand.Rand, lo, spread int64) int64 {
	for {
		if v := lo + rng.Int63n(spread); v != 0 {
			return v
		}
	}
}
