package peeling

import "errors"

// Sentinel errors for the peeling decoder.
var (
	// ErrNilGraph indicates a nil *decodinggraph.Graph was passed to Decode.
	ErrNilGraph = errors.New("peeling: graph is nil")

	// ErrDimensionMismatch indicates a slice argument did not match the
	// graph's vertex or edge count.
	ErrDimensionMismatch = errors.New("peeling: argument length does not match graph dimensions")

	// ErrInvariantViolation indicates the forest handed to Decode is not a
	// valid peel target: some edge's endpoints have already exhausted their
	// remaining forest degree before the reverse traversal reaches them.
	// This can only happen if forestEdges/vertexCount were not produced
	// together by the same spanningforest.Build/BuildSeeded call.
	ErrInvariantViolation = errors.New("peeling: forest invariant violated, no valid peel")
)
