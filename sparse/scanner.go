// SPDX-License-Identifier: MIT
// Package sparse: hand-written tokenizer for the text codec.
//
// Purpose:
//   - Provide the small explicit scanning primitives (skip-whitespace,
//     expect-literal, read-signed-integer) the codec is built from.
//   - Keep integer parsing manual and auditable: an optional leading '-'
//     followed by a digit run, accumulated digit-by-digit with an overflow
//     guard. No regexp, no strconv.
//
// Determinism & Performance:
//   - Single forward pass, no allocations, no backtracking beyond peek.

package sparse

import "math"

// textScanner walks one line of codec input left to right.
type textScanner struct {
	src string // the line being scanned
	pos int    // current byte offset into src
}

// isSpace reports whether b is horizontal whitespace. Lines are split on
// '\n' before scanning, so '\r' (CRLF remainder) counts as whitespace too.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// eof reports whether the scanner has consumed the whole line.
func (s *textScanner) eof() bool {
	return s.pos >= len(s.src)
}

// skipSpace advances past any run of horizontal whitespace.
func (s *textScanner) skipSpace() {
	for !s.eof() && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// expect consumes the byte ch or fails with ErrBadFormat.
func (s *textScanner) expect(ch byte) error {
	if s.eof() || s.src[s.pos] != ch {
		return ErrBadFormat
	}
	s.pos++

	return nil
}

// expectLit consumes the exact literal lit or fails with ErrBadFormat.
// The comparison is byte-wise and case-sensitive.
func (s *textScanner) expectLit(lit string) error {
	for i := 0; i < len(lit); i++ {
		if err := s.expect(lit[i]); err != nil {
			return err
		}
	}

	return nil
}

// readInt consumes a signed decimal integer: an optional '-' followed by at
// least one digit. Any other leading byte, a bare '-', or an int64 overflow
// fails with ErrBadFormat.
//
// The magnitude accumulates in negative space so math.MinInt64 round-trips
// without overflowing on the final sign flip.
// Complexity: O(digits).
func (s *textScanner) readInt() (int64, error) {
	// Optional sign.
	neg := false
	if !s.eof() && s.src[s.pos] == '-' {
		neg = true
		s.pos++
	}

	// At least one digit is mandatory.
	if s.eof() || !isDigit(s.src[s.pos]) {
		return 0, ErrBadFormat
	}

	// Accumulate digits as a negative value (wider than the positive range).
	var n int64
	for !s.eof() && isDigit(s.src[s.pos]) {
		d := int64(s.src[s.pos] - '0')
		if n < (math.MinInt64+d)/10 {
			return 0, ErrBadFormat // next digit would overflow int64
		}
		n = n*10 - d
		s.pos++
	}

	// Flip back for non-negative input; MinInt64 has no positive counterpart.
	if !neg {
		if n == math.MinInt64 {
			return 0, ErrBadFormat
		}
		n = -n
	}

	return n, nil
}

// rest verifies that nothing but whitespace remains on the line.
func (s *textScanner) rest() error {
	s.skipSpace()
	if !s.eof() {
		return ErrBadFormat // trailing characters are a structural violation
	}

	return nil
}
