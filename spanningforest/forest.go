package spanningforest

import "github.com/katalvlaran/lvlath/decodinggraph"

// frame is one stack level of the explicit-stack DFS: the vertex being
// visited, how far its adjacency list has been consumed, and that
// adjacency list itself (fetched once per vertex, not once per resume).
type frame struct {
	v         int
	idx       int
	edges     []int
	neighbors []int
}

// Build walks every connected component of the fully-grown subgraph with
// an explicit-stack DFS, in the edge-driven order
// SpanningForest.hpp's GetSpanningForestCacheFriendly walks its edge list,
// and returns the tree edges in the order each is first discovered
// alongside the per-vertex forest degree (number of surviving incident
// tree edges), which Decode consumes directly to find leaves.
//
// Complexity: O(V + E).
func Build(graph *decodinggraph.Graph, fullyGrown []bool) ([]int, []int, error) {
	return BuildSeeded(graph, fullyGrown, nil)
}

// BuildSeeded is Build but visits seeds first, before scanning any
// fully-grown edge in ascending id order, and never traverses an edge into
// a seed vertex from anywhere else in the walk: a seed always roots its own
// tree. This means an edge directly between two seeds is skipped rather
// than merging them into a single tree. Seeds outside [0, numVertices) or
// already visited by an earlier seed are silently skipped.
func BuildSeeded(graph *decodinggraph.Graph, fullyGrown []bool, seeds []int) ([]int, []int, error) {
	if graph == nil {
		return nil, nil, ErrNilGraph
	}
	numVertices := graph.NumVertices()
	numEdges := graph.NumEdges()
	if len(fullyGrown) != numEdges {
		return nil, nil, ErrFullyGrownLength
	}

	visited := make([]bool, numVertices)
	isSeed := make([]bool, numVertices)
	for _, s := range seeds {
		if s < 0 || s >= numVertices {
			continue
		}
		isSeed[s] = true
	}

	degree := make([]int, numVertices)
	forestEdges := make([]int, 0, numVertices)
	var stack []frame

	walk := func(root int) {
		if visited[root] {
			return
		}
		visited[root] = true
		stack = append(stack[:0], frame{
			v:         root,
			edges:     graph.EdgesTouchingVertex(root),
			neighbors: graph.VerticesTouchingVertex(root),
		})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]

			advanced := false
			for top.idx < len(top.edges) {
				e := top.edges[top.idx]
				w := top.neighbors[top.idx]
				top.idx++

				if !fullyGrown[e] || visited[w] || isSeed[w] {
					continue
				}

				visited[w] = true
				forestEdges = append(forestEdges, e)
				degree[top.v]++
				degree[w]++
				stack = append(stack, frame{
					v:         w,
					edges:     graph.EdgesTouchingVertex(w),
					neighbors: graph.VerticesTouchingVertex(w),
				})
				advanced = true
				break
			}

			if !advanced {
				stack = stack[:len(stack)-1]
			}
		}
	}

	for _, s := range seeds {
		if s < 0 || s >= numVertices || visited[s] {
			continue
		}
		walk(s)
	}

	for e := 0; e < numEdges; e++ {
		if !fullyGrown[e] {
			continue
		}
		u, v := graph.VerticesOfEdge(e)
		if !visited[u] {
			walk(u)
		}
		if !visited[v] {
			walk(v)
		}
	}

	return forestEdges, degree, nil
}
