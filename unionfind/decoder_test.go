package unionfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/decodinggraph"
)

// buildChain builds an n-vertex path graph 0-1-...-(n-1) with the two
// endpoints marked as graph-boundary vertices, mirroring a 1-D repetition
// code's decoding graph.
func buildChain(t *testing.T, n int) *decodinggraph.Graph {
	t.Helper()
	edges := make([][2]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	onBoundary := make([]bool, n)
	onBoundary[0] = true
	onBoundary[n-1] = true
	g, err := decodinggraph.NewGraph(n, edges, onBoundary)
	require.NoError(t, err)
	return g
}

// buildToricLikeGrid builds a small periodic-free grid graph (no wraparound,
// so all outer vertices are graph-boundary vertices) of size side x side,
// standing in for a planar surface-code decoding graph.
func buildToricLikeGrid(t *testing.T, side int) *decodinggraph.Graph {
	t.Helper()
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
	require.NoError(t, err)
	return g
}

// assertSatisfiesSyndrome checks the defining correctness property of a
// decoded correction: every non-boundary vertex sees a correction-edge
// count whose parity matches its original syndrome bit. Boundary vertices
// are unconstrained sinks.
func assertSatisfiesSyndrome(t *testing.T, g *decodinggraph.Graph, syndrome, correction []bool) {
	t.Helper()
	touched := make([]int, g.NumVertices())
	for e, on := range correction {
		if !on {
			continue
		}
		u, v := g.VerticesOfEdge(e)
		touched[u]++
		touched[v]++
	}
	for v := 0; v < g.NumVertices(); v++ {
		if g.IsVertexOnBoundary(v) {
			continue
		}
		assert.Equalf(t, syndrome[v], touched[v]%2 == 1, "vertex %d parity mismatch", v)
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilGraph)
}

func TestDecode_Validation(t *testing.T) {
	g := buildChain(t, 3)
	dec, err := New(g)
	require.NoError(t, err)

	_, err = dec.Decode([]bool{true, false})
	assert.ErrorIs(t, err, ErrSyndromeLength)

	_, err = dec.DecodeWithErasure(make([]bool, 3), []bool{true})
	assert.ErrorIs(t, err, ErrErasureLength)
}

func TestDecode_ChainSinglePair(t *testing.T) {
	g := buildChain(t, 5)
	dec, err := New(g)
	require.NoError(t, err)

	syndrome := []bool{false, false, true, false, false}
	correction, err := dec.Decode(syndrome)
	require.NoError(t, err)
	assertSatisfiesSyndrome(t, g, syndrome, correction)
}

func TestDecode_ChainNoSyndrome(t *testing.T) {
	g := buildChain(t, 6)
	dec, err := New(g)
	require.NoError(t, err)

	syndrome := make([]bool, 6)
	correction, err := dec.Decode(syndrome)
	require.NoError(t, err)
	for _, c := range correction {
		assert.False(t, c)
	}
}

func TestDecode_IsDeterministic(t *testing.T) {
	g := buildToricLikeGrid(t, 5)
	dec, err := New(g)
	require.NoError(t, err)

	syndrome := make([]bool, g.NumVertices())
	syndrome[6] = true
	syndrome[18] = true

	first, err := dec.Decode(syndrome)
	require.NoError(t, err)
	second, err := dec.Decode(syndrome)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assertSatisfiesSyndrome(t, g, syndrome, first)
}

func TestDecode_GridManyDefectsSatisfiesSyndrome(t *testing.T) {
	g := buildToricLikeGrid(t, 4)
	dec, err := New(g)
	require.NoError(t, err)

	syndrome := make([]bool, g.NumVertices())
	for _, v := range []int{5, 6, 9, 10} {
		syndrome[v] = true
	}

	correction, err := dec.Decode(syndrome)
	require.NoError(t, err)
	assertSatisfiesSyndrome(t, g, syndrome, correction)
}

func TestDecodeWithErasure_SeedsGrowth(t *testing.T) {
	g := buildChain(t, 5)
	dec, err := New(g)
	require.NoError(t, err)

	syndrome := []bool{false, false, false, true, false}
	erasure := []bool{true, true, false, false}

	correction, err := dec.DecodeWithErasure(syndrome, erasure)
	require.NoError(t, err)
	assertSatisfiesSyndrome(t, g, syndrome, correction)

	modified := dec.ModifiedErasure()
	assert.True(t, modified[0])
	assert.True(t, modified[1])
}

func TestModifiedErasure_NilBeforeAnyDecode(t *testing.T) {
	g := buildChain(t, 3)
	dec, err := New(g)
	require.NoError(t, err)
	assert.Nil(t, dec.ModifiedErasure())
}

func TestDecode_WithCustomIncrementsAndMaxGrowth(t *testing.T) {
	g := buildChain(t, 5)
	increments := []float64{1, 1, 1, 1}
	dec, err := New(g, WithIncrements(increments), WithMaxGrowth(3))
	require.NoError(t, err)

	syndrome := []bool{false, true, false, true, false}
	correction, err := dec.Decode(syndrome)
	require.NoError(t, err)
	assertSatisfiesSyndrome(t, g, syndrome, correction)
}
