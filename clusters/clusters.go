package clusters

import (
	"fmt"
	"math"
	"sort"

	"container/heap"

	"github.com/katalvlaran/lvlath/clusterboundary"
	"github.com/katalvlaran/lvlath/decodinggraph"
)

// New constructs a Clusters instance for graph, seeded from syndrome
// (odd-parity singleton roots) and, if non-nil, initialFullyGrown
// (edges pre-declared fully grown, e.g. from an erasure pattern).
//
// len(syndrome) must equal graph.NumVertices() and, if non-nil,
// len(initialFullyGrown) must equal graph.NumEdges(); callers such as
// unionfind.Decoder are responsible for that dimension check per spec.md's
// error taxonomy (DimensionMismatch is validated at the decode entry
// point, not here).
//
// Complexity: O(V + E).
func New(graph *decodinggraph.Graph, syndrome []bool, initialFullyGrown []bool, opts ...Option) (*Clusters, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	numVertices := graph.NumVertices()
	numEdges := graph.NumEdges()

	if cfg.MaxGrowth <= 0 || math.IsNaN(cfg.MaxGrowth) {
		return nil, ErrBadMaxGrowth
	}

	increment := make([]float64, numEdges)
	if cfg.Increments == nil {
		for e := range increment {
			increment[e] = 1.0
		}
	} else {
		if len(cfg.Increments) != numEdges {
			return nil, ErrIncrementLength
		}
		for e, inc := range cfg.Increments {
			if inc <= 0 || math.IsNaN(inc) {
				return nil, fmt.Errorf("%w: edge %d increment=%v", ErrBadIncrement, e, inc)
			}
			increment[e] = inc
		}
	}

	c := &Clusters{
		graph:            graph,
		maxGrowth:        cfg.MaxGrowth,
		increment:        increment,
		parent:           newFilledInts(numVertices, none),
		parity:           make([]int, numVertices),
		growth:           make([]float64, numVertices),
		edgeGrowth:       make([]float64, numEdges),
		fullyGrown:       make([]bool, numEdges),
		boundary:         clusterboundary.NewStore(numVertices),
		physicalBoundary: make([]bool, numVertices),
	}

	if initialFullyGrown != nil {
		copy(c.fullyGrown, initialFullyGrown)
	}

	c.initEdges(syndrome)
	c.initRoots(syndrome)

	return c, nil
}

func newFilledInts(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// isVertexNotFullyGrown reports whether v still has at least one incident
// edge that is not fully grown, i.e. whether it remains a valid boundary
// (frontier) candidate.
func (c *Clusters) isVertexNotFullyGrown(v int) bool {
	for _, e := range c.graph.EdgesTouchingVertex(v) {
		if !c.fullyGrown[e] {
			return true
		}
	}
	return false
}

// addEdgeToCluster folds edge e into clusterID: marks it fully grown,
// accounts for growth and parity, and updates the boundary and physical
// boundary bookkeeping. syndromeVisited prevents double-counting a vertex
// whose syndrome bit was already folded in by an earlier edge in the same
// initialization walk.
func (c *Clusters) addEdgeToCluster(clusterID, e int, syndrome []bool, syndromeVisited []bool) {
	u, v := c.graph.VerticesOfEdge(e)
	c.parent[u] = clusterID
	c.parent[v] = clusterID

	// Once a boundary vertex has set parity to -1 it stays -1.
	if !syndromeVisited[u] && syndrome[u] && c.parity[clusterID] >= 0 {
		c.parity[clusterID]++
	}
	if !syndromeVisited[v] && syndrome[v] && c.parity[clusterID] >= 0 {
		c.parity[clusterID]++
	}
	syndromeVisited[u] = true
	syndromeVisited[v] = true

	c.edgeGrowth[e] = c.maxGrowth
	c.fullyGrown[e] = true
	c.growth[clusterID] += c.maxGrowth

	if c.isVertexNotFullyGrown(u) {
		c.boundary.Add(clusterID, u)
	}
	if c.isVertexNotFullyGrown(v) {
		c.boundary.Add(clusterID, v)
	}
	if c.graph.IsVertexOnBoundary(u) {
		c.physicalBoundary[u] = true
		c.boundaryHits++
		c.parity[clusterID] = -1
	}
	if c.graph.IsVertexOnBoundary(v) {
		c.physicalBoundary[v] = true
		c.boundaryHits++
		c.parity[clusterID] = -1
	}
}

// initEdges walks each connected component of initialFullyGrown edges with
// an explicit stack (per spec.md §9's redesign note against the source's
// recursive DFS), folding every edge into one cluster per component whose
// id is the component's first-encountered vertex.
func (c *Clusters) initEdges(syndrome []bool) {
	numEdges := c.graph.NumEdges()
	edgesVisited := make([]bool, numEdges)
	syndromeVisited := make([]bool, len(syndrome))
	var stack []int

	for e := 0; e < numEdges; e++ {
		if !c.fullyGrown[e] || edgesVisited[e] {
			continue
		}

		u, _ := c.graph.VerticesOfEdge(e)
		clusterID := u
		c.initialRoots = append(c.initialRoots, clusterID)
		c.boundary.AddCluster(clusterID)

		stack = append(stack[:0], e)
		for len(stack) > 0 {
			edge := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if edgesVisited[edge] {
				continue
			}
			edgesVisited[edge] = true
			c.addEdgeToCluster(clusterID, edge, syndrome, syndromeVisited)

			for _, neighborEdge := range c.graph.EdgesTouchingEdge(edge) {
				if c.fullyGrown[neighborEdge] && !edgesVisited[neighborEdge] {
					stack = append(stack, neighborEdge)
				}
			}
		}

		c.AddToGrowQueue(clusterID)
	}
}

// initRoots seeds a singleton odd-parity cluster for every syndrome vertex
// not already claimed by initEdges. A syndrome vertex on the graph boundary
// instead starts boundary-absorbed (parity -1), so it is never grown.
func (c *Clusters) initRoots(syndrome []bool) {
	for v := 0; v < len(syndrome); v++ {
		if syndrome[v] && c.parent[v] == none {
			c.parent[v] = v
			c.parity[v] = 1
			if c.graph.IsVertexOnBoundary(v) {
				c.parity[v] = -1
				c.physicalBoundary[v] = true
				c.boundaryHits++
			}
			c.boundary.AddCluster(v)
			c.boundary.Add(v, v)
			c.initialRoots = append(c.initialRoots, v)
			c.AddToGrowQueue(v)
		}
	}
}

// GrowCluster grows every boundary vertex of root by one increment along
// each non-fully-grown incident edge, claiming newly reachable unclaimed
// vertices outright and returning the set of newly fully-grown edges that
// instead reach an already-claimed vertex (candidates for MergeClusters;
// such a vertex may belong to root's own cluster, which the caller filters
// out by comparing roots).
//
// Only the boundary entries present at call time are grown; vertices newly
// claimed during this call are grown on a subsequent GrowCluster call, per
// spec.md §4.3.
func (c *Clusters) GrowCluster(root int) []int {
	var candidates []int

	row := c.boundary.GetBoundary(root)
	n := len(row)
	for i := 0; i < n; i++ {
		b := row[i]
		edges := c.graph.EdgesTouchingVertex(b)
		neighbors := c.graph.VerticesTouchingVertex(b)
		for i2 := 0; i2 < len(edges); i2++ {
			e := edges[i2]
			if c.fullyGrown[e] {
				continue
			}

			c.edgeGrowth[e] += c.increment[e]
			c.growth[root] += c.increment[e]

			if c.edgeGrowth[e] < c.maxGrowth {
				continue
			}
			c.fullyGrown[e] = true

			w := neighbors[i2]
			if c.parent[w] == none {
				c.parent[w] = root
				c.boundary.Add(root, w)
				if c.graph.IsVertexOnBoundary(w) {
					c.parity[root] = -1
					c.physicalBoundary[w] = true
					c.boundaryHits++
				}
				continue
			}
			candidates = append(candidates, e)
		}
	}

	return candidates
}

// FindRoot resolves v to its cluster root via path-splitting find. Returns
// none if v has not been claimed by any cluster.
func (c *Clusters) FindRoot(v int) int {
	if c.parent[v] == none {
		return none
	}
	for c.parent[v] != v {
		old := v
		v = c.parent[old]
		c.parent[old] = c.parent[v]
	}
	return v
}

// checkInvariants verifies I2 over every edge: fully_grown[e] must agree
// with edgeGrowth[e] >= maxGrowth in both directions. It is a defensive,
// O(E) postcondition run once after the growth loop completes, not on
// every mutation; a mismatch here means a MergeClusters/GrowCluster bug
// let growth accumulate past the threshold without marking the edge, or
// vice versa, and panics rather than let the mismatch silently propagate
// into spanningforest/peeling.
func (c *Clusters) checkInvariants() {
	for e, grown := range c.fullyGrown {
		if grown != (c.edgeGrowth[e] >= c.maxGrowth) {
			panic(fmt.Errorf("%w: edge %d fully_grown=%v but edge_growth=%v (max_growth=%v)", ErrInvariantViolation, e, grown, c.edgeGrowth[e], c.maxGrowth))
		}
	}
}

// mergeBoundaryVertices folds y's boundary row into x's, dropping any
// vertex from y's row that is already fully grown on all incident edges
// (it can no longer contribute to growth and would only bloat x's row).
func (c *Clusters) mergeBoundaryVertices(x, y int) {
	for _, vy := range c.boundary.GetBoundary(y) {
		if vy < 0 {
			continue // deferred-removal sentinel
		}
		if c.isVertexNotFullyGrown(vy) {
			c.boundary.Add(x, vy)
			c.parent[vy] = x
		}
	}
}

// MergeClusters fuses clusters x and y (both must be roots) and returns
// the id of the surviving root: the cluster with the larger boundary size
// survives, so union-by-boundary-size keeps subsequent finds shallow.
func (c *Clusters) MergeClusters(x, y int) int {
	if x == y {
		return x
	}
	if c.boundary.Size(x) < c.boundary.Size(y) {
		x, y = y, x
	}

	c.parent[y] = x
	c.growth[x] += c.growth[y]

	if c.parity[x] >= 0 && c.parity[y] >= 0 {
		c.parity[x] += c.parity[y]
	} else {
		c.parity[x] = -1
	}

	c.mergeBoundaryVertices(x, y)

	return x
}

// CheckBoundaryVertices drops every vertex from root's boundary row that
// no longer has a non-fully-grown incident edge, then defragments the row.
func (c *Clusters) CheckBoundaryVertices(root int) {
	row := c.boundary.GetBoundary(root)
	for i, v := range row {
		if v >= 0 && !c.isVertexNotFullyGrown(v) {
			c.boundary.Remove(root, i)
		}
	}
	c.boundary.Defragment(root)
}

// AddToGrowQueue pushes clusterID into the grow-queue iff it is currently
// a root with odd parity (parity == -1 counts as even/absorbed and is
// never pushed).
func (c *Clusters) AddToGrowQueue(clusterID int) {
	if c.parent[clusterID] != clusterID {
		return
	}
	// parity == -1 marks a boundary-absorbed cluster (always treated as
	// even); Go's -1 % 2 == -1, which already differs from 1, so no extra
	// normalization is needed to exclude it here.
	if c.parity[clusterID]%2 != 1 {
		return
	}
	heap.Push(&c.growQueue, &growQueueItem{
		boundarySize: c.boundary.Size(clusterID),
		growth:       c.growth[clusterID],
		root:         clusterID,
	})
}

// PopSmallestOddCluster pops the smallest surviving odd-parity cluster
// from the grow-queue, discarding stale entries along the way (an entry is
// stale if its snapshot no longer matches the live root/boundary/growth
// state). Returns (none, false) once the queue is exhausted.
func (c *Clusters) PopSmallestOddCluster() (int, bool) {
	for c.growQueue.Len() > 0 {
		item := heap.Pop(&c.growQueue).(*growQueueItem)
		if c.parent[item.root] == item.root &&
			c.boundary.Size(item.root) == item.boundarySize &&
			c.growth[item.root] == item.growth {
			return item.root, true
		}
	}
	return none, false
}

// Validate runs the syndrome-validation growth loop (spec.md §4.4) to
// completion: repeatedly grow the smallest odd cluster, fuse on collision,
// and re-check boundaries, until no odd cluster remains.
func (c *Clusters) Validate() {
	for {
		root, ok := c.PopSmallestOddCluster()
		if !ok {
			break
		}

		merges := c.GrowCluster(root)
		newRoots := map[int]struct{}{root: {}}
		for _, e := range merges {
			u, v := c.graph.VerticesOfEdge(e)
			ru, rv := c.FindRoot(u), c.FindRoot(v)
			if ru != rv {
				newRoots[c.MergeClusters(ru, rv)] = struct{}{}
			}
		}

		// Deterministic order, per spec.md §5: ascending root id.
		ordered := make([]int, 0, len(newRoots))
		for r := range newRoots {
			ordered = append(ordered, r)
		}
		sort.Ints(ordered)

		for _, r := range ordered {
			c.CheckBoundaryVertices(r)
			c.AddToGrowQueue(r)
		}
	}

	c.checkInvariants()
}

// FullyGrownEdges returns a defensive copy of the current fully-grown edge
// mask.
func (c *Clusters) FullyGrownEdges() []bool {
	out := make([]bool, len(c.fullyGrown))
	copy(out, c.fullyGrown)
	return out
}

// PhysicalBoundaryVertices returns a defensive copy of the exact
// graph-boundary-vertex membership vector absorbed so far.
func (c *Clusters) PhysicalBoundaryVertices() []bool {
	out := make([]bool, len(c.physicalBoundary))
	copy(out, c.physicalBoundary)
	return out
}

// NumBoundaryHits returns the (possibly over-counted, per spec.md §9)
// number of boundary-absorption events observed so far. The unionfind
// decoder does not consult it: it always runs the seeded spanning-forest
// variant with PhysicalBoundaryVertices as seeds.
func (c *Clusters) NumBoundaryHits() int {
	return c.boundaryHits
}

// Parity returns cluster root's parity: -1 means boundary-absorbed
// (treated as even), otherwise the count of unmatched syndrome bits.
func (c *Clusters) Parity(root int) int {
	return c.parity[root]
}

// Root reports whether v is currently a cluster root (parent[v] == v).
func (c *Clusters) Root(v int) bool {
	return c.parent[v] == v
}

// InitialRoots returns a defensive copy of the vertex ids that seeded a
// cluster at construction time (either a fully-grown-edge component or a
// singleton syndrome bit), in the order they were created. These are the
// vertices growth started from, not the vertices it reached last.
func (c *Clusters) InitialRoots() []int {
	out := make([]int, len(c.initialRoots))
	copy(out, c.initialRoots)
	return out
}
