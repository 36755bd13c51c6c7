// Package decodinggraph defines the immutable decoding graph used by the
// union–find decoder: a dense-integer undirected graph with vertex-boundary
// flags and flattened CSR-style adjacency for O(1) amortized neighborhood
// queries.
//
// Vertices and edges are identified by dense integers in [0, numVertices)
// and [0, numEdges) respectively — there is no string-keyed lookup layer
// the way core.Graph has, because the decoder walks adjacency in the hot
// path of every GrowCluster call and cannot afford map indirection there.
//
// A Graph is built once via NewGraph and never mutated afterwards; it may
// be shared read-only across any number of concurrent decodes, each of
// which owns its own clusters.Clusters state.
//
// Complexity:
//
//   - NewGraph: O(V + E)
//   - all neighborhood queries: O(1) or O(deg(v))
//
// Errors:
//
//	ErrInvalidVertexCount    - numVertices <= 0.
//	ErrBoundaryLenMismatch   - len(vertexOnBoundary) != numVertices.
//	ErrVertexOutOfRange      - an edge endpoint is outside [0, numVertices).
//	ErrSelfLoop              - an edge connects a vertex to itself.
//	ErrDuplicateEdge         - two edges connect the same unordered pair.
//	ErrEdgeNotFound          - EdgeFromVertexPair found no matching edge.
package decodinggraph
