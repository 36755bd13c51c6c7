package decodinggraph

import "errors"

// Sentinel errors for decodinggraph construction and queries.
var (
	// ErrInvalidVertexCount indicates numVertices was not positive.
	ErrInvalidVertexCount = errors.New("decodinggraph: num_vertices must be positive")

	// ErrBoundaryLenMismatch indicates vertexOnBoundary's length did not match numVertices.
	ErrBoundaryLenMismatch = errors.New("decodinggraph: len(vertex_on_boundary) must equal num_vertices")

	// ErrVertexOutOfRange indicates an edge endpoint fell outside [0, numVertices).
	ErrVertexOutOfRange = errors.New("decodinggraph: vertex index out of range")

	// ErrSelfLoop indicates an edge connected a vertex to itself.
	ErrSelfLoop = errors.New("decodinggraph: self-loop is not allowed")

	// ErrDuplicateEdge indicates two edges connected the same unordered vertex pair.
	ErrDuplicateEdge = errors.New("decodinggraph: duplicate edge between the same vertex pair")

	// ErrEdgeNotFound indicates EdgeFromVertexPair found no edge between the given vertices.
	ErrEdgeNotFound = errors.New("decodinggraph: no edge between the given vertex pair")
)
