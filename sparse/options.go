// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for the text codec.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, last-writer-wins resolution.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public entry points consume ...Option.
package sparse

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultStrictBounds controls how Parse treats an entry whose row or
	// column reaches beyond the declared header dimensions.
	// false ⇒ the permissive growth rule: declared dimensions are a lower
	// bound, and the matrix silently grows to (maxRow+1)×(maxCol+1).
	// This default deliberately preserves the historical format semantics.
	DefaultStrictBounds = false
)

// Option mutates internal codec options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective codec configuration after applying setters.
// It is intentionally unexported field-wise; Parse accepts `...Option` and
// resolves them via gatherOptions.
type Options struct {
	strictBounds bool // DefaultStrictBounds
}

// WithStrictBounds makes Parse reject any entry at or beyond the declared
// header dimensions with ErrOutOfRange, instead of growing the matrix.
//
// Behavior highlights:
//   - The header stays authoritative: rows=2/cols=2 admits coordinates in
//     [0,2)×[0,2) only.
//   - Parsing remains all-or-nothing; the first offending entry aborts.
//
// Complexity: O(1).
//
// Notes:
//   - The permissive default mirrors the original format, where declared
//     dimensions are advisory; use this option when ingesting untrusted
//     documents that must match their header exactly.
func WithStrictBounds() Option {
	return func(o *Options) { o.strictBounds = true }
}

// gatherOptions applies user-provided setters on top of defaults.
// Last-writer-wins; stable for a given setter sequence.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		strictBounds: DefaultStrictBounds,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
