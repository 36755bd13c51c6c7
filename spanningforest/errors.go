package spanningforest

import "errors"

// Sentinel errors for spanning-forest construction.
var (
	// ErrNilGraph indicates a nil *decodinggraph.Graph was passed to Build.
	ErrNilGraph = errors.New("spanningforest: graph is nil")

	// ErrFullyGrownLength indicates fullyGrown's length did not match numEdges.
	ErrFullyGrownLength = errors.New("spanningforest: len(fully_grown) must equal num_edges")
)
