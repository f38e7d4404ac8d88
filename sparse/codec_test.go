// Package sparse_test contains unit tests for the text codec: Parse,
// Encode, and the Load/Save file entry points.
package sparse_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

// TestParseBasic decodes a small well-formed document and checks dimensions,
// entries and the non-zero count.
func TestParseBasic(t *testing.T) {
	doc := "rows=2\ncols=2\n(0,0,1)\n(0,1,2)\n(1,0,3)\n(1,1,4)\n"
	m, err := sparse.Parse(doc) // decode the document
	require.NoError(t, err)     // well-formed input must parse

	require.Equal(t, 2, m.Rows())    // declared rows respected
	require.Equal(t, 2, m.Cols())    // declared cols respected
	require.Equal(t, 4, m.NonZero()) // all four entries stored

	v, err := m.At(1, 0) // spot-check one entry
	require.NoError(t, err)
	require.Equal(t, int64(3), v)
}

// TestParseTolerance verifies the permissive lexical surface: blank and
// whitespace-only lines anywhere, arbitrary whitespace around entry
// integers, CRLF line endings, and a missing final newline.
func TestParseTolerance(t *testing.T) {
	doc := "\n  \nrows=3\r\n\ncols=3\n( 0 ,\t1 ,  -5 )  \n\n   \n(2,2,8)"
	m, err := sparse.Parse(doc) // decode despite the noise
	require.NoError(t, err)     // whitespace noise is not structural

	require.Equal(t, 3, m.Rows())    // header still read correctly
	require.Equal(t, 3, m.Cols())    // header still read correctly
	require.Equal(t, 2, m.NonZero()) // both entries landed

	v, err := m.At(0, 1) // whitespace-heavy entry
	require.NoError(t, err)
	require.Equal(t, int64(-5), v)
}

// TestParseZeroEntries checks that zero-valued entries are recognized but
// never stored, while still participating in dimension growth.
func TestParseZeroEntries(t *testing.T) {
	m, err := sparse.Parse("rows=2\ncols=2\n(0, 0, 0)\n(1, 1, 0)\n")
	require.NoError(t, err)          // zero entries are legal syntax
	require.Equal(t, 0, m.NonZero()) // but nothing is stored

	// A zero-valued entry beyond the declared bounds still grows the matrix.
	m, err = sparse.Parse("rows=2\ncols=2\n(4, 0, 0)\n")
	require.NoError(t, err)
	require.Equal(t, 5, m.Rows())    // grown to cover row 4
	require.Equal(t, 2, m.Cols())    // columns untouched
	require.Equal(t, 0, m.NonZero()) // still empty
}

// TestParseDimensionGrowth reproduces the canonical growth scenario: a
// 2x2 header with an entry at row 5 yields a 6x2 matrix holding the value.
func TestParseDimensionGrowth(t *testing.T) {
	m, err := sparse.Parse("rows=2\ncols=2\n(5, 0, 7)\n")
	require.NoError(t, err)       // growth is silent, not an error
	require.Equal(t, 6, m.Rows()) // maxRow+1
	require.Equal(t, 2, m.Cols()) // cols unchanged

	v, err := m.At(5, 0) // the out-of-header entry is addressable
	require.NoError(t, err)
	require.Equal(t, int64(7), v)

	// Column growth works the same way.
	m, err = sparse.Parse("rows=2\ncols=2\n(0, 9, 1)\n")
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 10, m.Cols()) // maxCol+1
}

// TestParseStrictBounds verifies the opt-in strict mode: entries at or
// beyond the declared dimensions are rejected instead of growing.
func TestParseStrictBounds(t *testing.T) {
	doc := "rows=2\ncols=2\n(5, 0, 7)\n"

	_, err := sparse.Parse(doc, sparse.WithStrictBounds()) // strict mode on
	require.ErrorIs(t, err, sparse.ErrOutOfRange)          // growth is refused

	// In-header documents parse identically in both modes.
	m, err := sparse.Parse("rows=2\ncols=2\n(1, 1, 3)\n", sparse.WithStrictBounds())
	require.NoError(t, err)
	require.Equal(t, 1, m.NonZero())
}

// TestParseBadFormat walks the taxonomy of structural violations; every one
// must surface ErrBadFormat and construct nothing.
func TestParseBadFormat(t *testing.T) {
	cases := map[string]string{
		"empty document":        "",
		"header only":           "rows=2\ncols=2\n",
		"missing cols line":     "rows=2\n(0,0,1)\n(1,1,2)\n",
		"swapped header order":  "cols=2\nrows=2\n(0,0,1)\n",
		"uppercase prefix":      "ROWS=2\ncols=2\n(0,0,1)\n",
		"space before equals":   "rows =2\ncols=2\n(0,0,1)\n",
		"zero rows":             "rows=0\ncols=2\n(0,0,1)\n",
		"negative cols":         "rows=2\ncols=-2\n(0,0,1)\n",
		"unparsable dimension":  "rows=two\ncols=2\n(0,0,1)\n",
		"non-integer token":     "rows=2\ncols=2\n(1,1,x)\n",
		"fractional value":      "rows=2\ncols=2\n(1,1,2.5)\n",
		"missing open paren":    "rows=2\ncols=2\n1,1,2)\n",
		"missing close paren":   "rows=2\ncols=2\n(1,1,2\n",
		"missing comma":         "rows=2\ncols=2\n(1 1 2)\n",
		"too few fields":        "rows=2\ncols=2\n(1,2)\n",
		"trailing characters":   "rows=2\ncols=2\n(1,1,2)x\n",
		"negative row index":    "rows=2\ncols=2\n(-1,0,2)\n",
		"negative column index": "rows=2\ncols=2\n(0,-3,2)\n",
		"value overflows int64": "rows=2\ncols=2\n(0,0,9223372036854775808)\n",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := sparse.Parse(doc)                  // attempt to decode
			require.ErrorIs(t, err, sparse.ErrBadFormat) // uniform wrong-format condition
			require.Nil(t, m)                            // no partial matrix escapes
		})
	}
}

// TestParseFirstBadLineAborts confirms all-or-nothing parsing: a malformed
// line rejects the document even when every other line is valid.
func TestParseFirstBadLineAborts(t *testing.T) {
	doc := "rows=3\ncols=3\n(0,0,1)\n(oops)\n(2,2,9)\n"
	m, err := sparse.Parse(doc)
	require.ErrorIs(t, err, sparse.ErrBadFormat) // one bad line poisons everything
	require.Nil(t, m)                            // nothing is returned
}

// TestEncodeDeterministic checks the canonical output: header first, then
// entries sorted by ascending row and column, one per line.
func TestEncodeDeterministic(t *testing.T) {
	m, err := sparse.New(3, 2) // build a matrix by hand
	require.NoError(t, err)

	// insert in scrambled order; Encode must not care
	require.NoError(t, m.Set(2, 1, 6))
	require.NoError(t, m.Set(0, 1, -2))
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(1, 0, 3))

	want := "rows=3\ncols=2\n(0, 0, 1)\n(0, 1, -2)\n(1, 0, 3)\n(2, 1, 6)\n"
	require.Equal(t, want, m.Encode()) // canonical, sorted form
	require.Equal(t, want, m.String()) // String is the same canonical form
}

// TestRoundTrip asserts parse(encode(parse(doc))) reconstructs an equal
// matrix, including the case where declared dimensions exceed the data.
func TestRoundTrip(t *testing.T) {
	docs := []string{
		"rows=2\ncols=2\n(0,0,1)\n(0,1,2)\n(1,0,3)\n(1,1,4)\n",
		"rows=10\ncols=10\n(0, 0, -1)\n(9, 9, 1)\n", // data inside larger declared dims
		"rows=1\ncols=1\n(0,0,0)\n",                 // zero entry, empty matrix
		"rows=2\ncols=2\n(5,0,7)\n",                 // growth applies before the first encode
	}

	for _, doc := range docs {
		first, err := sparse.Parse(doc) // initial decode
		require.NoError(t, err)

		second, err := sparse.Parse(first.Encode()) // re-decode the canonical form
		require.NoError(t, err)

		require.True(t, sparse.Equal(first, second), "doc=%q", doc) // dimensions and entries survive
	}
}

// TestLoadSave exercises the file entry points end to end in a temp dir.
func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.txt") // scratch file

	m, err := sparse.Parse("rows=2\ncols=3\n(0, 2, 4)\n(1, 0, -6)\n")
	require.NoError(t, err)

	require.NoError(t, m.Save(path)) // write the canonical form

	back, err := sparse.Load(path) // read it back
	require.NoError(t, err)
	require.True(t, sparse.Equal(m, back)) // full fidelity through the file

	_, err = sparse.Load(filepath.Join(t.TempDir(), "absent.txt")) // missing file
	require.ErrorIs(t, err, fs.ErrNotExist)                        // fs error passes through wrapped

	var nilM *sparse.Matrix                               // nil receiver
	require.ErrorIs(t, nilM.Save(path), sparse.ErrNilMatrix) // Save guards against nil
}
