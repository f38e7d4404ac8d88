// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by storage, codec and operations.
// This file intentionally contains ONLY domain-facing types; errors and
// options live in dedicated files (errors.go, options.go) per the package
// conventions.
package sparse

// coord is the structural (row, col) key of the element map. Using a struct
// keeps the key compact and hash-friendly and removes any ambiguity that a
// string-concatenated key would have for negative coordinates.
// Complexity: O(1) to build; used in O(nnz) scans during codec and ops.
type coord struct {
	r int // row index, 0-based
	c int // column index, 0-based
}

// Entry is a flat (Row, Col, Val) triple describing one non-zero element.
// It is the unit of the sorted snapshot returned by Entries and of the text
// codec's body lines.
type Entry struct {
	Row int   // row index, 0-based
	Col int   // column index, 0-based
	Val int64 // non-zero value
}
