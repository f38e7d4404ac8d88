// Package sparse_test: benchmarks for the codec and the arithmetic kernels
// over reproducible random-sparse fixtures.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/gen"
	"github.com/katalvlaran/sparsemat/sparse"
)

// benchFixture builds a reproducible rows×cols matrix with ~density fill.
func benchFixture(b *testing.B, rows, cols int, density float64, seed int64) *sparse.Matrix {
	b.Helper()
	m, err := gen.RandomSparse(rows, cols, density, gen.WithSeed(seed))
	if err != nil {
		b.Fatalf("fixture: %v", err)
	}

	return m
}

// BenchmarkParse measures decoding of a pre-encoded 200x200 document.
func BenchmarkParse(b *testing.B) {
	doc := benchFixture(b, 200, 200, 0.05, 1).Encode()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sparse.Parse(doc); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEncode measures canonical serialization of a 200x200 matrix.
func BenchmarkEncode(b *testing.B) {
	m := benchFixture(b, 200, 200, 0.05, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Encode()
	}
}

// BenchmarkAdd measures the element-wise sum of two 200x200 fixtures.
func BenchmarkAdd(b *testing.B) {
	x := benchFixture(b, 200, 200, 0.05, 1)
	y := benchFixture(b, 200, 200, 0.05, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Add(y); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMul measures the sparse product of two 100x100 fixtures.
func BenchmarkMul(b *testing.B) {
	x := benchFixture(b, 100, 100, 0.05, 1)
	y := benchFixture(b, 100, 100, 0.05, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Mul(y); err != nil {
			b.Fatal(err)
		}
	}
}
