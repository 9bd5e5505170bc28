package mesh_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/contourgrid/mesh"
)

// BenchmarkDiscretize buckets a 512×512 random field at eight cut points.
func BenchmarkDiscretize(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	const n = 512
	z := make([][]float64, n)
	for r := range z {
		z[r] = make([]float64, n)
		for c := range z[r] {
			z[r][c] = rng.Float64() * 100
		}
	}
	levels := make([]float64, 8)
	for i := range levels {
		levels[i] = float64(i+1) * 100 / 9
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mesh.Discretize(z, levels); err != nil {
			b.Fatalf("Discretize failed: %v", err)
		}
	}
}

// BenchmarkNew measures full meshgrid validation and deep copy.
func BenchmarkNew(b *testing.B) {
	const n = 256
	xs := make([][]float64, n)
	ys := make([][]float64, n)
	values := make([][]int, n)
	for r := 0; r < n; r++ {
		xs[r] = make([]float64, n)
		ys[r] = make([]float64, n)
		values[r] = make([]int, n)
		for c := 0; c < n; c++ {
			xs[r][c] = float64(c) * 0.5
			ys[r][c] = float64(r) * 0.5
			values[r][c] = (r + c) % 3
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mesh.New(xs, ys, values); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}
