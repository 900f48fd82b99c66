// Package mst computes minimum spanning trees of undirected weighted
// graphs over dense vertex ids [0, n) using Kruskal's algorithm.
//
// Edges are sorted by weight (a stable sort, so ties resolve by insertion
// order) and scanned in ascending order; an edge joins the result iff its
// endpoints are still in different union-find sets. The disjoint-set
// structure uses path halving and union by rank, so each find is
// effectively constant.
//
// If the graph is disconnected the result is a minimum spanning forest,
// one tree per connected component. Callers needing connectivity can
// compare len(tree) against n-1.
//
// Complexity:
//
//   - Time:   O(E log E + α(V)·E) ≈ O(E log V)
//   - Memory: O(E + V)
//
// # API
//
//	k, _ := mst.New(4)
//	_ = k.AddEdge(0, 1, 7)
//	_ = k.AddEdge(1, 2, 3)
//	tree, total := k.Build()
//
// # Contract
//
// Weights may be negative; self-loops are accepted and never selected.
// Build copies the edge list before sorting and may be called repeatedly,
// including after further AddEdge calls, with independent results.
package mst
