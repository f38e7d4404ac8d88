// Package sparse: Matrix is a coordinate-form integer matrix, storing
// elements in a map keyed by (row, col) for memory proportional to the
// number of non-zero entries.
package sparse

import "sort"

// Matrix is a rows×cols integer matrix in coordinate (COO/DOK) form.
// elems holds only non-zero values (sparsity invariant); nnz mirrors
// len(elems) and is maintained incrementally for O(1) NonZero queries.
type Matrix struct {
	rows, cols int             // logical dimensions, both > 0
	elems      map[coord]int64 // non-zero entries only
	nnz        int             // invariant: nnz == len(elems)
}

// New creates a rows×cols Matrix with no stored entries.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the element map.
// Stage 3 (Finalize): return new Matrix or ErrInvalidDimensions.
// Complexity: O(1) time and memory (map grows with use).
func New(rows, cols int) (*Matrix, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Return initialized Matrix
	return &Matrix{rows: rows, cols: cols, elems: make(map[coord]int64)}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.rows // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.cols // return stored column count
}

// NonZero returns the number of stored (non-zero) entries.
// Complexity: O(1) — tracked incrementally, never recomputed.
func (m *Matrix) NonZero() int {
	return m.nnz
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via validateIndex.
// Stage 2 (Execute): map lookup; absent entries read as 0.
// Complexity: O(1). No side effects.
func (m *Matrix) At(row, col int) (int64, error) {
	// Validate receiver and bounds
	if err := validateIndex(m, row, col); err != nil {
		return 0, sparseErrorf(opAt, err)
	}

	// Absent keys yield the zero value, which is exactly the sparse semantic.
	return m.elems[coord{row, col}], nil
}

// Set assigns value v at (row, col). Setting 0 removes any stored entry for
// that coordinate (a no-op when absent); setting a non-zero value inserts or
// overwrites. This is the single mutation primitive: every operation in the
// package builds results through it, so the sparsity invariant holds
// everywhere automatically.
// Stage 1 (Validate): bounds check via validateIndex.
// Stage 2 (Execute): insert/overwrite/delete with incremental nnz upkeep.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v int64) error {
	// Validate receiver and bounds
	if err := validateIndex(m, row, col); err != nil {
		return sparseErrorf(opSet, err)
	}

	key := coord{row, col}
	_, present := m.elems[key]
	if v == 0 {
		// Zero writes erase: drop the entry if one exists.
		if present {
			delete(m.elems, key)
			m.nnz--
		}
		return nil
	}

	// Non-zero write: count only first insertions, overwrites keep nnz.
	if !present {
		m.nnz++
	}
	m.elems[key] = v

	return nil
}

// Clone returns a deep copy of the matrix. The returned Matrix is fully
// independent of the original.
// Complexity: O(nnz) time and memory.
func (m *Matrix) Clone() *Matrix {
	// Allocate a map sized for the existing entries.
	elems := make(map[coord]int64, m.nnz)
	for k, v := range m.elems {
		elems[k] = v // copy each entry
	}

	return &Matrix{rows: m.rows, cols: m.cols, elems: elems, nnz: m.nnz}
}

// Entries returns a snapshot of all non-zero elements sorted by ascending
// row, then ascending column. The deterministic order makes the codec output
// reproducible and gives operations a stable iteration order independent of
// map internals.
// Complexity: O(nnz log nnz) time, O(nnz) space.
func (m *Matrix) Entries() []Entry {
	// Collect entries from the map (order unspecified here).
	out := make([]Entry, 0, m.nnz)
	for k, v := range m.elems {
		out = append(out, Entry{Row: k.r, Col: k.c, Val: v})
	}

	// Fix the order: row-major, ascending.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}

// Equal reports whether a and b have identical dimensions and identical
// non-zero entry sets. Nil is only equal to nil.
// Complexity: O(nnz).
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	// Shape first, then cardinality, then the entries themselves.
	if a.rows != b.rows || a.cols != b.cols || a.nnz != b.nnz {
		return false
	}
	for k, v := range a.elems {
		if b.elems[k] != v {
			return false
		}
	}

	return true
}
