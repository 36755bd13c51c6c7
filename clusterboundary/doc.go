// Package clusterboundary implements the compact per-cluster frontier
// store used by the union–find decoder: for each cluster root, a growable
// row of vertex ids currently on that cluster's boundary (vertices with at
// least one non-fully-grown incident edge).
//
// Removal is deferred-compaction: Remove writes a sentinel (-1) into the
// slot instead of shifting elements, so iteration over a row started
// before a Remove call remains valid. Defragment later compacts a row's
// non-sentinel entries to the front.
//
// Unlike the union-find decoder's C++ ancestor, rows here grow on demand
// (backed by Go slices) rather than being pre-allocated at a fixed
// 6·numVertices stride; total space is bounded by O(|E|) since a vertex
// can only be added to a boundary as many times as it has incident edges.
//
// Complexity: AddCluster, Add, Remove are O(1) amortized; Defragment and
// Merge are O(row size).
package clusterboundary
