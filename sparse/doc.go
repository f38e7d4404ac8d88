// SPDX-License-Identifier: MIT

// Package sparse implements integer matrices stored in coordinate form:
// only non-zero entries are kept, keyed structurally by (row, col).
//
// The package provides:
//
//   - Matrix with O(1) element access and an incrementally tracked
//     non-zero count (the sparsity invariant: no stored entry is zero).
//   - A line-based text codec (Parse/Encode, Load/Save) with a hand-written
//     tokenizer — no regexp, no strconv on the token path — and a permissive
//     dimension-growth rule for entries beyond the declared header bounds.
//   - Pure arithmetic: Add, Sub and Mul construct fresh results and never
//     mutate their operands.
//   - gonum interop (ToDense, FromDense, FloatView) for numeric pipelines.
//
// All user-triggered failures surface as package sentinels (ErrBadFormat,
// ErrOutOfRange, ErrDimensionMismatch, ...) matched via errors.Is; the
// package never logs or prints.
//
// Matrices are single-owner values: no internal synchronization is
// performed, and concurrent mutation is the caller's responsibility.
package sparse
