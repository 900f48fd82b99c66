// Package toposort computes a topological ordering of a directed acyclic
// graph over dense vertex ids [0, n).
//
// The ordering is produced by a depth-first traversal with three-color
// vertex marking: white (unvisited), gray (on the current DFS path) and
// black (finished). Vertices are recorded in post-order and the result is
// the reverse of that sequence, so for every edge u→v, u appears before v
// in the output. Hitting a gray vertex during the traversal means the
// graph contains a cycle and Sort returns ErrCycleDetected instead of an
// ordering.
//
// The traversal roots are scanned in increasing vertex id, which makes the
// output deterministic for a given insertion order of edges.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (color array, output slice and recursion stack)
//
// # API
//
//	s, _ := toposort.New(4)
//	_ = s.AddEdge(0, 1)
//	_ = s.AddEdge(1, 3)
//	order, err := s.Sort()
//
// # Contract
//
// Vertex ids are dense integers in [0, n). Self-loops are cycles of length
// one and are reported as ErrCycleDetected. Sort does not mutate the
// graph, so it may be called repeatedly and after further AddEdge calls.
package toposort
