package unionfind

import "errors"

// Sentinel errors returned by the decoder.
var (
	// ErrNilGraph indicates a nil *decodinggraph.Graph was passed to New.
	ErrNilGraph = errors.New("unionfind: graph is nil")

	// ErrSyndromeLength indicates len(syndrome) != graph.NumVertices().
	ErrSyndromeLength = errors.New("unionfind: len(syndrome) must equal num_vertices")

	// ErrErasureLength indicates len(erasure) != graph.NumEdges().
	ErrErasureLength = errors.New("unionfind: len(erasure) must equal num_edges")
)
