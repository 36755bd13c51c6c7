// Package unionfind implements the Delfosse–Nickerson weighted Union-Find
// decoder for topological quantum error-correcting codes: given a syndrome
// (and, optionally, an erasure pattern) over a decodinggraph.Graph, it
// returns a correction — the set of edges whose associated Pauli should be
// applied to return the code to its codespace.
//
// Overview:
//
//   - Decode runs the full three-stage pipeline for a single syndrome:
//     clusters.New + Validate (syndrome validation growth loop), then
//     spanningforest.BuildSeeded over the resulting fully-grown edges,
//     seeded at the physical boundary vertices the growth loop absorbed
//     (clusters.Clusters.PhysicalBoundaryVertices), then peeling.Decode to
//     recover the correction. Seeding at the physical boundary rather than
//     at arbitrary vertex 0 makes each fully-grown component's forest root
//     at the boundary it will ultimately drain residual parity to, and
//     guarantees an edge directly between two boundary vertices is never
//     folded into the forest.
//   - DecodeWithErasure additionally seeds the initial fully-grown edge set
//     from a caller-supplied erasure pattern before validation begins,
//     letting known-faulty edges start already grown instead of paying for
//     growth rounds to reach them.
//   - A Decoder is built once per graph (via New) and is safe to reuse
//     across many independent Decode/DecodeWithErasure calls; each call
//     constructs its own clusters.Clusters internally and discards it when
//     the call returns.
//
// When to use:
//
//   - Any topological-code decoding pipeline (surface code, toric code)
//     that already has a decodinggraph.Graph built for its lattice and
//     needs a fast, deterministic decoder for repeated syndromes.
//
// Key features:
//
//   - Functional options configure per-edge growth increments and the
//     growth threshold, mirroring the options pattern used by clusters.
//   - ModifiedErasure exposes the fully-grown edge mask of the most recent
//     Decode or DecodeWithErasure call: the supplied erasure (if any),
//     expanded to include every edge the growth loop itself marked fully
//     grown — useful for diagnostics
//     and for chaining decodes across correlated syndromes.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) per decode, dominated by the growth loop's
//     grow-queue maintenance.
//   - Space: O(V + E).
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph          if a nil *decodinggraph.Graph was passed to New.
//   - ErrSyndromeLength    if len(syndrome) != graph.NumVertices().
//   - ErrErasureLength     if len(erasure) != graph.NumEdges().
//
// Example usage:
//
//	dec, err := unionfind.New(graph)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	correction, err := dec.Decode(syndrome)
package unionfind
