// SPDX-License-Identifier: MIT

package graph_test

import (
	"fmt"

	"github.com/SebastianSpeitel/datalink/format"
	"github.com/SebastianSpeitel/datalink/graph"
)

// ExampleCycle formats a three-node ring; the depth bound cuts the cycle.
func ExampleCycle() {
	g, err := graph.Build([]graph.Option{graph.WithIDScheme(graph.SymbolIDFn)}, graph.Cycle(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	s, err := format.Sprint(g.Root(), format.WithMaxDepth(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s)
	// Output:
	// Node { values: ["A"], links: [Node { values: ["B"], links: [Node { values: ["C"], links: [Node { values: ["A"], links: [...] }] }] }] }
}
