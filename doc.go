// Package graphbook is a collection of standalone graph-algorithm building
// blocks designed to be lifted wholesale into contest solutions and small
// tools.
//
// 🚀 What is graphbook?
//
//	A set of independent, dense-index algorithm packages:
//		• Maximum flow: highest-label push–relabel with gap relabeling
//		• Ordering: topological sort
//		• Components: strongly connected (Tarjan + 2-SAT), biconnected
//		  (bridges & articulation points)
//		• Spanning trees: Kruskal with union–find
//		• Shortest paths: Dijkstra
//		• Matching: Hopcroft–Karp, minimum vertex cover, Gale–Shapley
//		• Tours: Euler tour construction
//
// ✨ Why choose graphbook?
//
//   - Standalone – no package depends on another at runtime; copy one file,
//     get one algorithm
//   - Dense ids – every structure is an array indexed by vertex id in [0, n),
//     no pointer graphs, no maps on the hot path
//   - Predictable – explicit sentinel errors for contract violations,
//     deterministic iteration order, reproducible benchmarks
//
// Each subpackage follows the same shape: a constructor taking the vertex
// count, AddEdge calls to describe the graph, and one computing entry point.
//
//	go get github.com/graphbook/graphbook
package graphbook
