package enclosure_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gardencraft/enclosure"
	"github.com/katalvlaran/gardencraft/farm"
)

// benchGrid returns an n×n grid with random codes in 0..3.
func benchGrid(b *testing.B, n int) *farm.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	data := make([][]int, n)
	for r := range data {
		data[r] = make([]int, n)
		for c := range data[r] {
			data[r][c] = rng.Intn(4)
		}
	}
	g, err := farm.FromCells(n, n, data)
	if err != nil {
		b.Fatalf("setup FromCells failed: %v", err)
	}

	return g
}

// BenchmarkEnclosureMask includes building the Border graph.
// Complexity: O(W×H×4)
func BenchmarkEnclosureMask(b *testing.B) {
	g := benchGrid(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = enclosure.EnclosureMask(g)
	}
}

// BenchmarkInteriorMask includes building the Border graph.
// Complexity: O(W×H×4)
func BenchmarkInteriorMask(b *testing.B) {
	g := benchGrid(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = enclosure.InteriorMask(g)
	}
}
