package clusters

import "errors"

// Sentinel errors for clusters construction.
var (
	// ErrNilGraph indicates a nil *decodinggraph.Graph was passed to New.
	ErrNilGraph = errors.New("clusters: graph is nil")

	// ErrIncrementLength indicates Config.Increments' length did not match numEdges.
	ErrIncrementLength = errors.New("clusters: len(increments) must equal num_edges")

	// ErrBadIncrement indicates an increment was <= 0 or NaN.
	ErrBadIncrement = errors.New("clusters: increment must be positive and not NaN")

	// ErrBadMaxGrowth indicates MaxGrowth was <= 0 or NaN.
	ErrBadMaxGrowth = errors.New("clusters: max_growth must be positive and not NaN")

	// ErrInvariantViolation indicates one of spec invariants I1-I6 was
	// violated, a state the growth/merge logic should never be able to
	// reach on its own. checkInvariants (run at the end of Validate) panics
	// with this wrapped error (rather than returning it) when an edge's
	// fully-grown flag disagrees with its accumulated growth, which caller
	// input cannot cause.
	ErrInvariantViolation = errors.New("clusters: internal invariant violated")
)
