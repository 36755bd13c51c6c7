package clusters_test

import (
	"testing"

	"github.com/katalvlaran/lvlath/clusters"
	"github.com/katalvlaran/lvlath/decodinggraph"
)

// buildBenchGrid builds a side x side grid decoding graph with the outer
// ring as graph boundary, standing in for a planar surface-code lattice.
func buildBenchGrid(b *testing.B, side int) *decodinggraph.Graph {
	b.Helper()
	idx := func(r, c int) int { return r*side + c }
	numVertices := side * side
	var edges [][2]int
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if c+1 < side {
				edges = append(edges, [2]int{idx(r, c), idx(r, c+1)})
			}
			if r+1 < side {
				edges = append(edges, [2]int{idx(r, c), idx(r+1, c)})
			}
		}
	}
	onBoundary := make([]bool, numVertices)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if r == 0 || r == side-1 || c == 0 || c == side-1 {
				onBoundary[idx(r, c)] = true
			}
		}
	}
	g, err := decodinggraph.NewGraph(numVertices, edges, onBoundary)
	if err != nil {
		b.Fatalf("build bench grid: %v", err)
	}
	return g
}

// BenchmarkValidate measures the full growth loop (repeated GrowCluster +
// MergeClusters + CheckBoundaryVertices) on a 20x20 grid with a scattered
// syndrome, the hot path exercised on every Decode call.
func BenchmarkValidate(b *testing.B) {
	g := buildBenchGrid(b, 20)
	syndrome := make([]bool, g.NumVertices())
	for v := 0; v < g.NumVertices(); v += 7 {
		syndrome[v] = true
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, err := clusters.New(g, syndrome, nil)
		if err != nil {
			b.Fatalf("clusters.New: %v", err)
		}
		c.Validate()
	}
}

// BenchmarkGrowCluster measures a single GrowCluster call in isolation,
// against a cluster already seeded and popped from the grow-queue.
func BenchmarkGrowCluster(b *testing.B) {
	g := buildBenchGrid(b, 20)
	syndrome := make([]bool, g.NumVertices())
	syndrome[g.NumVertices()/2] = true

	c, err := clusters.New(g, syndrome, nil)
	if err != nil {
		b.Fatalf("clusters.New: %v", err)
	}
	root, ok := c.PopSmallestOddCluster()
	if !ok {
		b.Fatal("expected an odd cluster to grow")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GrowCluster(root)
	}
}
