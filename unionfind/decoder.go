package unionfind

import (
	"github.com/katalvlaran/lvlath/clusters"
	"github.com/katalvlaran/lvlath/decodinggraph"
	"github.com/katalvlaran/lvlath/peeling"
	"github.com/katalvlaran/lvlath/spanningforest"
)

// New constructs a Decoder bound to graph. graph must outlive the Decoder.
func New(graph *decodinggraph.Graph, opts ...Option) (*Decoder, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}

	cfg := Config{MaxGrowth: 2.0}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Decoder{
		graph:  graph,
		config: clusters.Config{Increments: cfg.Increments, MaxGrowth: cfg.MaxGrowth},
	}, nil
}

// Decode returns the correction edge mask for syndrome, with no erasure
// information: len(syndrome) must equal the graph's vertex count.
func (d *Decoder) Decode(syndrome []bool) ([]bool, error) {
	return d.decode(syndrome, nil)
}

// DecodeWithErasure is Decode but additionally seeds the growth loop with
// erasure as an initial fully-grown edge set: len(erasure) must equal the
// graph's edge count. After the call, ModifiedErasure reports the full set
// of edges the decode considered fully grown, erasure included.
func (d *Decoder) DecodeWithErasure(syndrome []bool, erasure []bool) ([]bool, error) {
	if len(erasure) != d.graph.NumEdges() {
		return nil, ErrErasureLength
	}
	return d.decode(syndrome, erasure)
}

func (d *Decoder) decode(syndrome []bool, erasure []bool) ([]bool, error) {
	if len(syndrome) != d.graph.NumVertices() {
		return nil, ErrSyndromeLength
	}

	opts := clustersOptions(d.config)
	c, err := clusters.New(d.graph, syndrome, erasure, opts...)
	if err != nil {
		return nil, err
	}

	c.Validate()

	fullyGrown := c.FullyGrownEdges()
	d.lastModifiedErasure = fullyGrown

	forestEdges, degree, err := spanningforest.BuildSeeded(d.graph, fullyGrown, physicalBoundarySeeds(c))
	if err != nil {
		return nil, err
	}

	return peeling.Decode(d.graph, syndrome, forestEdges, degree)
}

// ModifiedErasure returns the fully-grown edge mask produced by the most
// recent Decode or DecodeWithErasure call, or nil if none has run yet. The
// returned slice is a defensive copy.
func (d *Decoder) ModifiedErasure() []bool {
	if d.lastModifiedErasure == nil {
		return nil
	}
	out := make([]bool, len(d.lastModifiedErasure))
	copy(out, d.lastModifiedErasure)
	return out
}

// physicalBoundarySeeds converts c.PhysicalBoundaryVertices()'s per-vertex
// mask into the []int seed list spanningforest.BuildSeeded expects, so the
// seeded walk roots each fully-grown component at the physical boundary
// vertices it absorbed during growth rather than at construction-time
// cluster roots.
func physicalBoundarySeeds(c *clusters.Clusters) []int {
	mask := c.PhysicalBoundaryVertices()
	seeds := make([]int, 0, len(mask))
	for v, onBoundary := range mask {
		if onBoundary {
			seeds = append(seeds, v)
		}
	}
	return seeds
}

func clustersOptions(cfg clusters.Config) []clusters.Option {
	var opts []clusters.Option
	if cfg.Increments != nil {
		opts = append(opts, clusters.WithIncrements(cfg.Increments))
	}
	opts = append(opts, clusters.WithMaxGrowth(cfg.MaxGrowth))
	return opts
}
