// Package scc finds strongly connected components of a directed graph
// over dense vertex ids [0, n) using Tarjan's algorithm, and derives
// 2-SAT assignments from the component structure.
//
// Components are emitted in reverse topological order of the condensation:
// a component appears before every component it can reach. This is exactly
// the order the 2-SAT assignment rule needs.
//
// Complexity:
//
//   - Time:   O(V + E) (single DFS)
//   - Memory: O(V)     (index/lowlink arrays and the component stack)
package scc

import "errors"

// Sentinel errors returned by the scc package.
var (
	// ErrVertexRange indicates a vertex id outside [0, n).
	ErrVertexRange = errors.New("scc: vertex index out of range")

	// ErrNonPositiveOrder indicates that New was called with n ≤ 0.
	ErrNonPositiveOrder = errors.New("scc: vertex count must be positive")

	// ErrNotBuilt indicates an accessor was called before Build.
	ErrNotBuilt = errors.New("scc: Build must be called first")

	// ErrBadNegation indicates a negation table that is not an involution
	// over [0, n), or a variable sharing a component with its negation
	// (the 2-SAT instance is unsatisfiable).
	ErrBadNegation = errors.New("scc: invalid or contradictory negation table")
)

const unvisited = -1

// Tarjan accumulates a directed graph and computes its strongly connected
// components. Not safe for concurrent use.
type Tarjan struct {
	n   int
	adj [][]int

	built       bool
	components  [][]int
	componentOf []int

	// DFS working state, valid only during Build.
	index   int
	idx     []int
	low     []int
	stack   []int
	inStack []bool
}

// New constructs a Tarjan solver for n vertices (ids 0..n-1).
func New(n int) (*Tarjan, error) {
	if n <= 0 {
		return nil, ErrNonPositiveOrder
	}

	return &Tarjan{n: n, adj: make([][]int, n)}, nil
}

// AddEdge records a directed edge u→v.
func (t *Tarjan) AddEdge(u, v int) error {
	if u < 0 || u >= t.n || v < 0 || v >= t.n {
		return ErrVertexRange
	}
	t.adj[u] = append(t.adj[u], v)

	return nil
}

// Build runs Tarjan's algorithm over the whole graph. It may be called
// again after further AddEdge calls; each run starts from fresh state.
func (t *Tarjan) Build() {
	t.index = 0
	t.idx = make([]int, t.n)
	t.low = make([]int, t.n)
	t.inStack = make([]bool, t.n)
	t.stack = t.stack[:0]
	t.components = nil
	t.componentOf = make([]int, t.n)
	for v := range t.idx {
		t.idx[v] = unvisited
	}

	for v := 0; v < t.n; v++ {
		if t.idx[v] == unvisited {
			t.visit(v)
		}
	}
	t.built = true
}

// Components returns the strongly connected components in reverse
// topological order of the condensation.
func (t *Tarjan) Components() ([][]int, error) {
	if !t.built {
		return nil, ErrNotBuilt
	}

	return t.components, nil
}

// ComponentOf returns, for every vertex, the index of its component in
// the Components slice.
func (t *Tarjan) ComponentOf() ([]int, error) {
	if !t.built {
		return nil, ErrNotBuilt
	}

	return t.componentOf, nil
}

// visit is the classic Tarjan DFS: assign discovery indices, maintain
// lowlink over tree and back edges, and pop a completed root's stack
// segment as one component.
func (t *Tarjan) visit(v int) {
	t.idx[v] = t.index
	t.low[v] = t.index
	t.index++
	t.stack = append(t.stack, v)
	t.inStack[v] = true

	for _, w := range t.adj[v] {
		if t.idx[w] == unvisited {
			t.visit(w)
			if t.low[w] < t.low[v] {
				t.low[v] = t.low[w]
			}
		} else if t.inStack[w] && t.low[w] < t.low[v] {
			t.low[v] = t.low[w]
		}
	}

	if t.low[v] != t.idx[v] {
		return
	}
	// v is a component root: everything above it on the stack belongs to
	// the same component.
	id := len(t.components)
	var comp []int
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.inStack[w] = false
		t.componentOf[w] = id
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	t.components = append(t.components, comp)
}
