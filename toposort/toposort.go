// Package toposort computes a topological ordering of a directed acyclic
// graph over dense vertex ids [0, n).
//
// The ordering is produced by depth-first search: vertices are recorded in
// post-order and the result is the reverse of that sequence, so for every
// edge u→v, u appears before v. A back edge found during the traversal
// means the graph is cyclic and Sort returns ErrCycleDetected.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (color array and recursion stack)
package toposort

import "errors"

// Sentinel errors returned by the toposort package.
var (
	// ErrVertexRange indicates a vertex id outside [0, n).
	ErrVertexRange = errors.New("toposort: vertex index out of range")

	// ErrNonPositiveOrder indicates that New was called with n ≤ 0.
	ErrNonPositiveOrder = errors.New("toposort: vertex count must be positive")

	// ErrCycleDetected indicates the graph is not a DAG.
	ErrCycleDetected = errors.New("toposort: graph contains a cycle")
)

// Visitation colors for the DFS.
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully explored
)

// Sorter accumulates a directed graph and produces topological orders.
// It is not safe for concurrent use.
type Sorter struct {
	n     int
	adj   [][]int
	color []int
	order []int
}

// New constructs a Sorter for n vertices (ids 0..n-1).
func New(n int) (*Sorter, error) {
	if n <= 0 {
		return nil, ErrNonPositiveOrder
	}

	return &Sorter{n: n, adj: make([][]int, n)}, nil
}

// AddEdge records a directed edge u→v.
func (s *Sorter) AddEdge(u, v int) error {
	if u < 0 || u >= s.n || v < 0 || v >= s.n {
		return ErrVertexRange
	}
	s.adj[u] = append(s.adj[u], v)

	return nil
}

// Sort returns a topological order of all vertices, or ErrCycleDetected
// if the graph contains a cycle. The traversal starts from vertex 0 and
// proceeds in increasing id order, so the result is deterministic.
func (s *Sorter) Sort() ([]int, error) {
	// Fresh per-run state so Sort may be called repeatedly.
	s.color = make([]int, s.n)
	s.order = make([]int, 0, s.n)

	for v := 0; v < s.n; v++ {
		if s.color[v] == white {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Reverse the post-order in place to obtain the topological order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit performs the DFS from v, recording post-order and detecting back
// edges via the gray state.
func (s *Sorter) visit(v int) error {
	s.color[v] = gray
	for _, w := range s.adj[v] {
		switch s.color[w] {
		case gray:
			return ErrCycleDetected
		case white:
			if err := s.visit(w); err != nil {
				return err
			}
		}
	}
	s.color[v] = black
	s.order = append(s.order, v)

	return nil
}
