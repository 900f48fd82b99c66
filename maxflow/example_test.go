package maxflow_test

import (
	"fmt"

	"github.com/graphbook/graphbook/maxflow"
)

// ExampleMaxFlow demonstrates max flow on the two-path diamond
//
//	0→1 (10), 0→2 (10), 1→3 (4), 2→3 (9)
//
// where the sink-side arcs bound the answer: 4 + 9 = 13.
func ExampleMaxFlow() {
	nw, _ := maxflow.New(4)
	_ = nw.AddEdge(0, 1, 10)
	_ = nw.AddEdge(0, 2, 10)
	_ = nw.AddEdge(1, 3, 4)
	_ = nw.AddEdge(2, 3, 9)

	value, _ := maxflow.MaxFlow(nw, 0, 3, maxflow.DefaultOptions())
	fmt.Println(value)
	// Output:
	// 13
}

// ExampleNetwork_ResidualReachable derives a minimum cut after MaxFlow:
// the residual-reachable vertices form the source side, and the saturated
// arcs leaving that side are the cut.
func ExampleNetwork_ResidualReachable() {
	nw, _ := maxflow.New(4)
	_ = nw.AddEdge(0, 1, 5)
	_ = nw.AddEdge(1, 2, 2)
	_ = nw.AddEdge(2, 3, 5)

	value, _ := maxflow.MaxFlow(nw, 0, 3, maxflow.DefaultOptions())
	reach, _ := nw.ResidualReachable(0)

	fmt.Println(value)
	fmt.Println(reach)
	// Output:
	// 2
	// [true true false false]
}
