// Package sparsemat is a small, deterministic toolkit for sparse integer
// matrices with a plain-text interchange format.
//
// 🚀 What is sparsemat?
//
//	A pure-Go library that brings together:
//		• Sparse storage: only non-zero entries are kept, keyed by (row, col)
//		• A textual codec: load and save matrices in a tiny line-based format
//		• Arithmetic: addition, subtraction and multiplication over sparse data
//		• gonum interop: dense views and conversions for numeric pipelines
//		• Generators: identity, diagonal and random-sparse fixtures
//
// ✨ Why choose sparsemat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, strict validation, in-code docs
//   - Deterministic – sorted entry order on output, fixed iteration orders
//   - Extensible – functional options for codec and generator policies
//
// Everything is organized under two subpackages:
//
//	sparse/ — the SparseMatrix type, text codec, arithmetic and conversions
//	gen/    — deterministic matrix generators for tests and benchmarks
//
// The text format, end to end:
//
//	rows=2
//	cols=3
//	(0, 0, 5)
//	(1, 2, -7)
//
// declares a 2×3 matrix with two non-zero entries. Header dimensions are a
// lower bound: an entry beyond them grows the matrix on load.
//
//	go get github.com/katalvlaran/sparsemat/sparse
package sparsemat
