// Package peeling implements the peeling decoder: given the ordered
// spanning-forest edge list of a decoder's fully-grown edges and a
// syndrome, it walks that list backwards, treating each edge's current
// leaf endpoint as a syndrome sink, flipping that edge's correction bit
// whenever the leaf carries an unmatched syndrome bit, and propagating the
// leaf's syndrome bit up to the edge's other endpoint before moving on.
//
// What:
//
//   - Decode consumes the ordered edge list and per-vertex forest degree
//     produced together by spanningforest.Build/BuildSeeded, without
//     mutating the caller's syndrome slice, and returns a fresh correction
//     mask over edges.
//
// Why:
//   - Reverse discovery order guarantees each edge is reached only after
//     the subtree below it has been peeled, so no queue is needed; a
//     per-vertex remaining forest degree decides which endpoint of each
//     edge is the leaf.
//   - Once growth has produced a forest whose odd-syndrome vertices are
//     matched pairwise by tree paths, peeling recovers the actual
//     correction edges in linear time, leaf-by-leaf, with no backtracking.
//
// Complexity: Time O(V), Memory O(V).
//
// Errors:
//
//   - ErrNilGraph             graph pointer is nil.
//   - ErrDimensionMismatch    a slice argument's length didn't match the graph.
//   - ErrInvariantViolation   the forest edge list and vertex counts are
//     inconsistent with each other; peeling reached an edge whose leaf or
//     parent had no remaining forest degree left to consume.
package peeling
