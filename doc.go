// Package lvlath is a topological-code syndrome decoder built around the
// Delfosse–Nickerson weighted Union-Find algorithm.
//
// 🚀 What is lvlath?
//
//	A modern, zero-dependency decoding pipeline (a decoding graph may be
//	shared read-only across goroutines; each Decoder serves one goroutine
//	at a time) that brings together:
//		• A CSR decoding graph over the code's stabilizer lattice
//		• Weighted Union-Find cluster growth with syndrome validation
//		• A cache-friendly spanning forest, seeded at the physical boundary
//		• Leaf-peeling to recover the final correction
//
// ✨ Why choose lvlath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – deterministic, allocation-light, no hidden state
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – functional options configure growth increments and
//     thresholds without touching the decode loop itself
//
// Under the hood, everything is organized under six subpackages:
//
//	decodinggraph/    — immutable CSR decoding graph for topological codes
//	clusterboundary/  — deferred-compaction boundary-vertex store
//	clusters/         — weighted union-find clusters & syndrome validation
//	spanningforest/   — spanning forest over a fully-grown edge subgraph
//	peeling/          — leaf-peeling correction decoder
//	unionfind/        — the public Union-Find syndrome decoder API
//
// Quick usage:
//
//	graph, _ := decodinggraph.NewGraph(numVertices, edges, onBoundary)
//	dec, _ := unionfind.New(graph)
//	correction, _ := dec.Decode(syndrome)
//
// Dive into SPEC_FULL.md and DESIGN.md for the full pipeline write-up and
// the grounding ledger behind each package.
package lvlath
