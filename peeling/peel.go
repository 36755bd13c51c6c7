package peeling

import (
	"fmt"

	"github.com/katalvlaran/lvlath/decodinggraph"
)

// Decode runs PeelForest over the ordered forest edge list and per-vertex
// forest degree (as produced by spanningforest.Build/BuildSeeded) against
// syndrome, returning a fresh per-edge correction mask. syndrome and
// vertexCount are never mutated; Decode works on internal copies.
//
// PeelForest walks forestEdges backwards, from the edge discovered last by
// the spanning-forest DFS to the edge discovered first. For each edge
// (u, v), u is taken as the leaf when its remaining forest degree is 1 and
// it is not on the graph boundary; otherwise v is the leaf, whatever v's
// degree or boundary flag. When the leaf carries a syndrome bit, the edge
// is marked as a correction and the bit is XORed onto the other endpoint
// (its "parent" in the peel), so it either cancels there or keeps
// propagating toward the tree's root. Because forestEdges is walked in
// strict reverse discovery order, each edge is reached only after every
// edge in the subtree below it has been peeled.
//
// Complexity: O(V).
func Decode(graph *decodinggraph.Graph, syndrome []bool, forestEdges []int, vertexCount []int) ([]bool, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	numVertices := graph.NumVertices()
	numEdges := graph.NumEdges()
	if len(syndrome) != numVertices || len(vertexCount) != numVertices {
		return nil, ErrDimensionMismatch
	}

	remainingSyndrome := make([]bool, numVertices)
	copy(remainingSyndrome, syndrome)
	remainingCount := make([]int, numVertices)
	copy(remainingCount, vertexCount)
	correction := make([]bool, numEdges)

	treeSize := len(forestEdges)
	for j := 0; j < treeSize; j++ {
		i := treeSize - j - 1
		edge := forestEdges[i]
		if edge < 0 || edge >= numEdges {
			return nil, fmt.Errorf("%w: forest edge %d out of range", ErrInvariantViolation, edge)
		}

		u, v := graph.VerticesOfEdge(edge)
		swapUV := remainingCount[u] != 1 || graph.IsVertexOnBoundary(u)
		leaf, parent := u, v
		if swapUV {
			leaf, parent = v, u
		}

		if remainingCount[leaf] < 1 || remainingCount[parent] < 1 {
			return nil, fmt.Errorf("%w: edge %d (leaf=%d, parent=%d) has no remaining forest degree to peel", ErrInvariantViolation, edge, leaf, parent)
		}
		remainingCount[leaf]--
		remainingCount[parent]--

		if remainingSyndrome[leaf] {
			correction[edge] = true
			remainingSyndrome[leaf] = false
			remainingSyndrome[parent] = !remainingSyndrome[parent]
		}
	}

	return correction, nil
}
