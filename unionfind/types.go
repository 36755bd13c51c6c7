package unionfind

import (
	"github.com/katalvlaran/lvlath/clusters"
	"github.com/katalvlaran/lvlath/decodinggraph"
)

// Config configures a Decoder. It mirrors clusters.Config directly: a
// Decoder's only job beyond orchestration is to forward growth parameters
// into the per-decode clusters.Clusters it constructs.
type Config struct {
	Increments []float64
	MaxGrowth  float64
}

// Option configures a Decoder via functional options.
type Option func(*Config)

// WithIncrements sets a per-edge growth increment vector, forwarded
// unchanged to every clusters.Clusters this Decoder constructs.
func WithIncrements(increments []float64) Option {
	return func(c *Config) { c.Increments = increments }
}

// WithMaxGrowth sets the growth threshold at which an edge becomes fully
// grown, forwarded unchanged to every clusters.Clusters this Decoder
// constructs.
func WithMaxGrowth(maxGrowth float64) Option {
	return func(c *Config) { c.MaxGrowth = maxGrowth }
}

// Decoder runs the Union-Find decoding pipeline against a fixed
// decodinggraph.Graph. The only per-decode state a Decoder keeps is the
// last call's fully-grown edge mask; it is safe for reuse across many
// Decode/DecodeWithErasure calls, but is not safe for concurrent use since
// ModifiedErasure exposes the last call's result.
type Decoder struct {
	graph  *decodinggraph.Graph
	config clusters.Config

	lastModifiedErasure []bool
}
