// Package unionfind_test demonstrates the decoder's public API on small,
// hand-checkable decoding graphs. Each example is runnable via
// "go test -run Example", showing both code and expected output.
package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath/decodinggraph"
	"github.com/katalvlaran/lvlath/unionfind"
)

// ExampleDecoder_Decode decodes a single interior defect on a 5-vertex
// repetition-code chain: vertices 0 and 4 are the code's two physical
// boundaries, and the growth loop expands symmetrically from vertex 2
// until it reaches both ends. The physical-boundary vertices seed the
// spanning forest in ascending order, so peeling routes the defect's
// residual parity out through the lower-numbered boundary.
func ExampleDecoder_Decode() {
	g, err := decodinggraph.NewGraph(5,
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}},
		[]bool{true, false, false, false, true},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dec, err := unionfind.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	syndrome := []bool{false, false, true, false, false}
	correction, err := dec.Decode(syndrome)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(correction)
	// Output: [true true false false]
}

// ExampleDecoder_DecodeWithErasure seeds the growth loop with a known
// erasure (edges (0,1) and (1,2) pre-declared fully grown), so the single
// interior defect at vertex 3 only has to grow two edges before it reaches
// the erased region and, through it, the boundary at vertex 0.
func ExampleDecoder_DecodeWithErasure() {
	g, err := decodinggraph.NewGraph(5,
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}},
		[]bool{true, false, false, false, true},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dec, err := unionfind.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	syndrome := []bool{false, false, false, true, false}
	erasure := []bool{true, true, false, false}
	correction, err := dec.DecodeWithErasure(syndrome, erasure)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(correction)
	// Output: [true true true false]
}
