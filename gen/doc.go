// SPDX-License-Identifier: MIT

// Package gen builds sparse matrices with known structure: identity,
// diagonal, and Bernoulli random-sparse fixtures.
//
// Every constructor is deterministic for fixed inputs: iteration orders are
// stable (row-major, ascending) and random sampling is driven by an explicit
// seed (DefaultSeed unless WithSeed overrides it). Constructors return only
// sentinel errors and never panic at runtime.
//
// The package exists for tests, benchmarks and demos that need reproducible
// sparse inputs; it contains no arithmetic of its own.
package gen
