package clusters

import (
	"github.com/katalvlaran/lvlath/clusterboundary"
	"github.com/katalvlaran/lvlath/decodinggraph"
)

// none marks "no cluster assigned" in the parent array. Vertex ids are
// always >= 0, so -1 is a safe sentinel.
const none = -1

// Config configures a Clusters instance.
//
// Increments   – per-edge growth increment; must have length numEdges if
//
//	non-nil, and every entry must be > 0 and not NaN. Defaults
//	to 1.0 for every edge when nil.
//
// MaxGrowth    – the growth threshold at which an edge becomes fully
//
//	grown. Must be > 0 and not NaN. Defaults to 2.0.
type Config struct {
	Increments []float64
	MaxGrowth  float64
}

// Option configures a Clusters instance via functional options, in the
// same style as dijkstra.Option.
type Option func(*Config)

// WithIncrements sets a per-edge growth increment vector.
func WithIncrements(increments []float64) Option {
	return func(c *Config) { c.Increments = increments }
}

// WithMaxGrowth sets the growth threshold for an edge to become fully
// grown.
func WithMaxGrowth(maxGrowth float64) Option {
	return func(c *Config) { c.MaxGrowth = maxGrowth }
}

// DefaultConfig returns a Config with MaxGrowth=2.0 and default (all-1.0)
// increments.
func DefaultConfig() Config {
	return Config{MaxGrowth: 2.0}
}

// Clusters is the weighted union–find structure over a decoding graph:
// parallel dense arrays for parent (disjoint-set), parity, and growth,
// plus per-edge growth state and a boundary-vertex frontier store.
//
// A Clusters is constructed once per decode and mutated exclusively by its
// owner; it is never shared across goroutines.
type Clusters struct {
	graph     *decodinggraph.Graph
	maxGrowth float64
	increment []float64 // len numEdges

	parent []int     // len numVertices; none = unclaimed
	parity []int     // len numVertices, indexed by root id; -1 = boundary-absorbed
	growth []float64 // len numVertices, indexed by root id

	edgeGrowth []float64 // len numEdges
	fullyGrown []bool    // len numEdges

	boundary *clusterboundary.Store

	growQueue growQueue

	// physicalBoundary is the exact membership vector of graph-boundary
	// vertices absorbed into some cluster so far.
	physicalBoundary []bool
	// boundaryHits counts absorption events; per spec.md §9 this may
	// over-count a vertex touched by more than one fully-grown edge during
	// initialization. Nothing in this module reads it beyond
	// NumBoundaryHits.
	boundaryHits int

	initialRoots []int
}
