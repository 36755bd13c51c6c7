// Package clusters implements the weighted union–find structure at the
// heart of the decoder: disjoint-set clusters over a decodinggraph.Graph,
// augmented with per-cluster parity, growth, and a boundary frontier, plus
// the syndrome-validation growth loop that drives clusters to even parity.
//
// Growth proceeds boundary-vertex by boundary-vertex (GrowCluster), never
// touching an already fully-grown edge twice; clusters are fused
// (MergeClusters) whenever growth causes two distinct clusters to claim
// the same edge. A stale-tolerant min-heap (the "grow-queue") always
// yields the smallest odd-parity cluster, using lazy invalidation instead
// of a decrease-key operation — see growqueue.go.
//
// Complexity: each SyndromeValidation iteration strictly increases total
// edge growth, bounded above by maxGrowth*numEdges; overall growth-loop
// work is O((V+E) log V) amortized including grow-queue maintenance.
//
// Errors:
//
//	ErrNilGraph          - New was given a nil graph.
//	ErrIncrementLength   - Config.Increments length mismatch.
//	ErrBadIncrement      - a supplied increment was <= 0 or NaN.
//	ErrBadMaxGrowth      - Config.MaxGrowth was <= 0 or NaN.
package clusters
