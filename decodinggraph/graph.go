package decodinggraph

import "fmt"

// NewGraph constructs an immutable Graph from numVertices, an edge list of
// (u, v) pairs, and a per-vertex boundary flag. Complexity: O(V + E).
//
// Validation (in order):
//  1. numVertices > 0                              -> ErrInvalidVertexCount.
//  2. len(vertexOnBoundary) == numVertices          -> ErrBoundaryLenMismatch.
//  3. every edge endpoint in [0, numVertices)       -> ErrVertexOutOfRange.
//  4. u != v for every edge                         -> ErrSelfLoop.
//  5. no two edges share the same unordered pair    -> ErrDuplicateEdge.
func NewGraph(numVertices int, edges [][2]int, vertexOnBoundary []bool) (*Graph, error) {
	if numVertices <= 0 {
		return nil, ErrInvalidVertexCount
	}
	if len(vertexOnBoundary) != numVertices {
		return nil, ErrBoundaryLenMismatch
	}

	numEdges := len(edges)
	degree := make([]int, numVertices)
	seenPairs := make(map[[2]int]struct{}, numEdges)
	edgeFrom := make([]int, numEdges)
	edgeTo := make([]int, numEdges)

	for e, pair := range edges {
		u, v := pair[0], pair[1]
		if u < 0 || u >= numVertices || v < 0 || v >= numVertices {
			return nil, fmt.Errorf("%w: edge %d has endpoint (%d, %d)", ErrVertexOutOfRange, e, u, v)
		}
		if u == v {
			return nil, fmt.Errorf("%w: edge %d at vertex %d", ErrSelfLoop, e, u)
		}
		key := [2]int{u, v}
		if u > v {
			key = [2]int{v, u}
		}
		if _, dup := seenPairs[key]; dup {
			return nil, fmt.Errorf("%w: (%d, %d)", ErrDuplicateEdge, u, v)
		}
		seenPairs[key] = struct{}{}

		edgeFrom[e] = u
		edgeTo[e] = v
		degree[u]++
		degree[v]++
	}

	vertexOffset := make([]int, numVertices+1)
	for v := 0; v < numVertices; v++ {
		vertexOffset[v+1] = vertexOffset[v] + degree[v]
	}

	adjEdges := make([]int, 2*numEdges)
	adjVertices := make([]int, 2*numEdges)
	localOfEdgeFrom := make([]int, numEdges)
	localOfEdgeTo := make([]int, numEdges)

	// cursor[v] tracks the next free slot within vertex v's CSR row.
	cursor := make([]int, numVertices)
	copy(cursor, vertexOffset[:numVertices])

	for e := 0; e < numEdges; e++ {
		u, v := edgeFrom[e], edgeTo[e]

		slotU := cursor[u]
		adjEdges[slotU] = e
		adjVertices[slotU] = v
		localOfEdgeFrom[e] = slotU
		cursor[u]++

		slotV := cursor[v]
		adjEdges[slotV] = e
		adjVertices[slotV] = u
		localOfEdgeTo[e] = slotV
		cursor[v]++
	}

	onBoundary := make([]bool, numVertices)
	copy(onBoundary, vertexOnBoundary)

	return &Graph{
		numVertices:     numVertices,
		numEdges:        numEdges,
		onBoundary:      onBoundary,
		edgeFrom:        edgeFrom,
		edgeTo:          edgeTo,
		vertexOffset:    vertexOffset,
		adjEdges:        adjEdges,
		adjVertices:     adjVertices,
		localOfEdgeFrom: localOfEdgeFrom,
		localOfEdgeTo:   localOfEdgeTo,
	}, nil
}

// NumVertices returns |V|.
func (g *Graph) NumVertices() int { return g.numVertices }

// NumEdges returns |E|.
func (g *Graph) NumEdges() int { return g.numEdges }

// NumLocalEdges returns 2*|E|, the number of half-edges.
func (g *Graph) NumLocalEdges() int { return 2 * g.numEdges }

// VerticesOfEdge returns the (u, v) endpoints of edge e.
func (g *Graph) VerticesOfEdge(e int) (int, int) {
	return g.edgeFrom[e], g.edgeTo[e]
}

// EdgesTouchingVertex returns the global edge ids incident to v, in stable
// row order. The returned slice is an internal view; callers must not
// mutate it.
func (g *Graph) EdgesTouchingVertex(v int) []int {
	return g.adjEdges[g.vertexOffset[v]:g.vertexOffset[v+1]]
}

// VerticesTouchingVertex returns v's neighbor vertex ids, parallel to
// EdgesTouchingVertex(v). The returned slice is an internal view; callers
// must not mutate it.
func (g *Graph) VerticesTouchingVertex(v int) []int {
	return g.adjVertices[g.vertexOffset[v]:g.vertexOffset[v+1]]
}

// EdgesTouchingEdge returns the edges adjacent to e (sharing an endpoint
// with e), excluding e itself.
func (g *Graph) EdgesTouchingEdge(e int) []int {
	u, v := g.edgeFrom[e], g.edgeTo[e]
	adjacent := make([]int, 0, (g.vertexOffset[u+1]-g.vertexOffset[u])+(g.vertexOffset[v+1]-g.vertexOffset[v])-2)
	for _, other := range g.EdgesTouchingVertex(u) {
		if other != e {
			adjacent = append(adjacent, other)
		}
	}
	for _, other := range g.EdgesTouchingVertex(v) {
		if other != e {
			adjacent = append(adjacent, other)
		}
	}
	return adjacent
}

// LocalEdgeStride returns the starting offset of v's incident half-edges
// in the flat adjacency arrays.
func (g *Graph) LocalEdgeStride(v int) int {
	return g.vertexOffset[v]
}

// GlobalEdgeFromLocal returns the global edge id owning half-edge slot le.
func (g *Graph) GlobalEdgeFromLocal(le int) int {
	return g.adjEdges[le]
}

// LocalEdgeFromGlobal returns the half-edge slot for edge e on the given
// side: side 0 is e's From endpoint, side 1 is its To endpoint.
func (g *Graph) LocalEdgeFromGlobal(e int, side int) int {
	if side == 0 {
		return g.localOfEdgeFrom[e]
	}
	return g.localOfEdgeTo[e]
}

// IsVertexOnBoundary reports whether v is a graph-boundary (syndrome sink)
// vertex.
func (g *Graph) IsVertexOnBoundary(v int) bool {
	return g.onBoundary[v]
}

// EdgeFromVertexPair returns the edge id connecting u and v, checked in
// both orders since the graph is undirected. Returns ErrEdgeNotFound if no
// such edge exists.
func (g *Graph) EdgeFromVertexPair(u, v int) (int, error) {
	for _, e := range g.EdgesTouchingVertex(u) {
		a, b := g.edgeFrom[e], g.edgeTo[e]
		if (a == u && b == v) || (a == v && b == u) {
			return e, nil
		}
	}
	return -1, fmt.Errorf("%w: (%d, %d)", ErrEdgeNotFound, u, v)
}
