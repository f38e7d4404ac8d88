// SPDX-License-Identifier: MIT

// Package gen: functional configuration for the random constructors.
// Defaults are documented constants; RandomSparse resolves setters via
// gatherOptions with last-writer-wins semantics.
package gen

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSeed drives the RNG when WithSeed is not supplied, making
	// RandomSparse reproducible out of the box.
	DefaultSeed = int64(1)

	// DefaultValueMin / DefaultValueMax bound sampled entry values.
	// Zero draws are re-rolled, so the stored entries stay non-zero.
	DefaultValueMin = int64(-9)
	DefaultValueMax = int64(9)
)

// Option mutates internal generator options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	seed   int64 // RNG seed; DefaultSeed
	valMin int64 // inclusive lower bound of sampled values
	valMax int64 // inclusive upper bound of sampled values
}

// WithSeed fixes the RNG seed, making the sampled structure and values fully
// reproducible for a given (rows, cols, p, seed) tuple.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithValueRange bounds sampled entry values to [lo, hi]. The range must not
// be inverted and must contain at least one non-zero value; RandomSparse
// rejects violations with ErrInvalidValueRange.
func WithValueRange(lo, hi int64) Option {
	return func(o *options) {
		o.valMin = lo
		o.valMax = hi
	}
}

// gatherOptions applies user setters on top of defaults.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) options {
	o := options{
		seed:   DefaultSeed,
		valMin: DefaultValueMin,
		valMax: DefaultValueMax,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
