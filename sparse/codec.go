// SPDX-License-Identifier: MIT
// Package sparse: the text codec (Parse / Encode).
//
// Grammar (line-based; blank and whitespace-only lines are ignored anywhere):
//
//	rows=<positive integer>
//	cols=<positive integer>
//	(<row>, <col>, <value>)
//	...
//
// The header prefixes are literal and case-sensitive. Entry integers are
// signed, with arbitrary whitespace around each and nothing after the
// closing parenthesis. All scanning goes through the hand-written
// textScanner; strconv and regexp are never consulted.
//
// Dimension reconciliation: the declared dimensions are a lower-bound
// intent, not a ceiling. After all entries are read, the matrix grows to
// (maxRow+1)×(maxCol+1) whenever an observed coordinate reaches the declared
// bound. WithStrictBounds opts out of this rule.
//
// Failure policy: parsing is all-or-nothing. Fewer than three non-blank
// lines, a malformed or non-positive header, or any malformed entry line
// aborts the whole parse with ErrBadFormat; no partial matrix escapes.

package sparse

import (
	"fmt"
	"strings"
)

// Header literals and document shape constants.
const (
	headerRows = "rows=" // literal prefix of the first non-blank line
	headerCols = "cols=" // literal prefix of the second non-blank line

	// minDocumentLines is the smallest well-formed document: two header
	// lines plus at least one entry line.
	minDocumentLines = 3

	// maxIndex bounds entry coordinates to the int range.
	maxIndex = int64(^uint(0) >> 1)
)

// Parse decodes a matrix text document into a fresh Matrix.
//
// Implementation:
//   - Stage 1 (Lines): split on '\n' and discard blank lines.
//   - Stage 2 (Header): require `rows=`/`cols=` with positive values.
//   - Stage 3 (Entries, pass 1): validate every entry line and collect the
//     maximum observed row/column; zero-valued entries are recognized (they
//     participate in the bounds) but will not be stored.
//   - Stage 4 (Reconcile): grow dimensions to cover every observed
//     coordinate (or reject under WithStrictBounds).
//   - Stage 5 (Commit, pass 2): build the Matrix through Set; every commit
//     is in-bounds by construction.
//
// Returns the decoded Matrix, or ErrBadFormat / ErrOutOfRange (strict mode
// only) with no partial result.
// Complexity: O(len(src) + nnz).
func Parse(src string, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	// Stage 1: collect non-blank lines.
	lines := nonBlankLines(src)
	if len(lines) < minDocumentLines {
		return nil, sparseErrorf(opParse, ErrBadFormat)
	}

	// Stage 2: decode the two header lines.
	rows, err := parseHeader(lines[0], headerRows)
	if err != nil {
		return nil, sparseErrorf(opParse, err)
	}
	cols, err := parseHeader(lines[1], headerCols)
	if err != nil {
		return nil, sparseErrorf(opParse, err)
	}

	// Stage 3: first pass over the body — validate and bound.
	entries := make([]Entry, 0, len(lines)-2)
	maxRow, maxCol := -1, -1
	var e Entry
	for _, line := range lines[2:] {
		if e, err = parseEntry(line); err != nil {
			return nil, sparseErrorf(opParse, err) // first malformed line aborts
		}
		if o.strictBounds && (e.Row >= rows || e.Col >= cols) {
			return nil, sparseErrorf(opParse, ErrOutOfRange)
		}
		if e.Row > maxRow {
			maxRow = e.Row
		}
		if e.Col > maxCol {
			maxCol = e.Col
		}
		entries = append(entries, e)
	}

	// Stage 4: declared dimensions are advisory — grow to cover the data.
	if maxRow >= rows {
		rows = maxRow + 1
	}
	if maxCol >= cols {
		cols = maxCol + 1
	}

	// Stage 5: second pass — commit through the mutation primitive.
	m, err := New(rows, cols)
	if err != nil {
		return nil, sparseErrorf(opParse, err)
	}
	for _, e = range entries {
		if e.Val == 0 {
			continue // recognized but never stored (sparsity invariant)
		}
		_ = m.Set(e.Row, e.Col, e.Val) // in-bounds by Stage 4
	}

	return m, nil
}

// nonBlankLines splits src on '\n' and drops lines that are empty or consist
// only of whitespace. Single forward walk, no trimming of kept lines.
func nonBlankLines(src string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(src); i++ {
		if i == len(src) || src[i] == '\n' {
			line := src[start:i]
			if !isBlank(line) {
				out = append(out, line)
			}
			start = i + 1
		}
	}

	return out
}

// isBlank reports whether line holds nothing but whitespace.
func isBlank(line string) bool {
	for i := 0; i < len(line); i++ {
		if !isSpace(line[i]) {
			return false
		}
	}

	return true
}

// parseHeader decodes one header line: the exact literal lit, a manually
// parsed integer, optional trailing whitespace, end of line. The value must
// be positive.
func parseHeader(line, lit string) (int, error) {
	s := textScanner{src: line}
	if err := s.expectLit(lit); err != nil {
		return 0, ErrBadFormat
	}
	v, err := s.readInt()
	if err != nil {
		return 0, ErrBadFormat
	}
	if err = s.rest(); err != nil {
		return 0, ErrBadFormat
	}
	// Declared dimensions must be positive (and representable as int).
	if v <= 0 || v > maxIndex {
		return 0, ErrBadFormat
	}

	return int(v), nil
}

// parseEntry decodes one body line: `(<row>, <col>, <value>)` with arbitrary
// whitespace around each integer and nothing after the closing parenthesis.
// Coordinates must be non-negative and representable as int — growth can
// never legalize a negative index, so one is a structural violation here.
func parseEntry(line string) (Entry, error) {
	s := textScanner{src: line}

	s.skipSpace()
	if err := s.expect('('); err != nil {
		return Entry{}, ErrBadFormat
	}

	// Three comma-separated integers.
	var nums [3]int64
	for i := 0; i < 3; i++ {
		s.skipSpace()
		v, err := s.readInt()
		if err != nil {
			return Entry{}, ErrBadFormat
		}
		nums[i] = v
		s.skipSpace()
		if i < 2 {
			if err = s.expect(','); err != nil {
				return Entry{}, ErrBadFormat
			}
		}
	}

	if err := s.expect(')'); err != nil {
		return Entry{}, ErrBadFormat
	}
	if err := s.rest(); err != nil {
		return Entry{}, ErrBadFormat
	}

	// Coordinates: non-negative, int-ranged.
	if nums[0] < 0 || nums[0] > maxIndex || nums[1] < 0 || nums[1] > maxIndex {
		return Entry{}, ErrBadFormat
	}

	return Entry{Row: int(nums[0]), Col: int(nums[1]), Val: nums[2]}, nil
}

// Encode serializes the matrix into its canonical text form: the two header
// lines followed by one line per stored entry, sorted by ascending row then
// ascending column. Deterministic regardless of internal map order, so
// Parse(m.Encode()) reconstructs a matrix equal to m (declared dimensions
// are emitted verbatim and survive the round trip).
// Complexity: O(nnz log nnz).
func (m *Matrix) Encode() string {
	if m == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "rows=%d\n", m.rows)
	fmt.Fprintf(&sb, "cols=%d\n", m.cols)
	for _, e := range m.Entries() {
		fmt.Fprintf(&sb, "(%d, %d, %d)\n", e.Row, e.Col, e.Val)
	}

	return sb.String()
}

// String implements fmt.Stringer as the canonical text form.
func (m *Matrix) String() string {
	return m.Encode()
}
