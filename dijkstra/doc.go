// Package dijkstra computes single-source shortest paths on weighted
// graphs with non-negative edge weights, over dense vertex ids [0, n).
//
// The implementation is the classic min-heap variant with lazy
// decrease-key: relaxing an edge pushes a fresh heap entry instead of
// updating the old one, and stale entries are recognized and skipped on
// extraction by comparing against the settled distance. Each vertex is
// settled exactly once, in increasing distance order.
//
// ShortestPaths returns both the distance array and a parent array for
// path reconstruction: walking parent[] from any reached vertex back to
// the source yields a shortest path in reverse. Unreachable vertices get
// distance Unreachable and parent -1.
//
// Complexity:
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E) (adjacency plus up to E heap entries)
//
// # API
//
//	g, _ := dijkstra.New(5, true)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(1, 2, 1)
//	dist, parent, err := g.ShortestPaths(0)
//
// # Contract
//
// Negative weights are rejected at AddEdge (ErrNegativeWeight), so
// ShortestPaths never observes one. The graph is directed or undirected
// as chosen at New; an undirected edge is a pair of opposite arcs of the
// same weight. ShortestPaths does not mutate the graph and may be called
// for several sources in turn.
package dijkstra
