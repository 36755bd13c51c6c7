// Package spanningforest builds a spanning forest of the subgraph induced
// by a decoder's fully-grown edges: exactly one spanning tree per connected
// component, discarding every fully-grown edge that would close a cycle.
//
// What:
//
//   - Build walks every component of the fully-grown subgraph with an
//     explicit-stack DFS (never recursive, per the decoder's stack-depth
//     budget), scanning fully-grown edges in ascending id order, and
//     returns the tree edges as an ordered list in the order each is first
//     discovered — the order peeling's reverse traversal depends on.
//   - BuildSeeded is identical except it visits a caller-supplied list of
//     seed vertices first, before falling through to the ascending edge
//     scan for any component the seeds missed. Seeding the walk with a
//     cluster's physical-boundary vertices roots each fully-grown component
//     at the boundary it absorbed during growth, rather than at an
//     arbitrary construction-time vertex.
//
// Why:
//   - Decode requires a forest, not an arbitrary fully-grown subgraph: a
//     component with a cycle has no unique leaf-to-root peeling order.
//   - Discovery order matters: Decode peels the returned edge list in
//     reverse, so an edge discovered later in the walk is always peeled
//     before the edge that led to it.
//
// Complexity: Time O(V+E), Memory O(V).
//
// Errors:
//
//   - ErrNilGraph            graph pointer is nil.
//   - ErrFullyGrownLength    len(fullyGrown) != graph.NumEdges().
package spanningforest
