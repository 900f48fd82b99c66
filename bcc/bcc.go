// Package bcc finds biconnected components, bridges, and articulation
// points of an undirected graph over dense vertex ids [0, n).
//
// Edges are identified by the index AddEdge assigned them (0, 1, 2, ...).
// Components group edge ids: two edges share a component iff they lie on
// a common simple cycle. Bridges are the edge ids whose removal
// disconnects their endpoints; articulation points are the vertex ids
// whose removal increases the number of connected components.
//
// Parallel edges are supported: only the specific parent edge is skipped
// during the DFS, so a duplicated edge correctly forms a cycle and its
// copies are never reported as bridges.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (edge stack and adjacency)
package bcc

import "errors"

// Sentinel errors returned by the bcc package.
var (
	// ErrVertexRange indicates a vertex id outside [0, n).
	ErrVertexRange = errors.New("bcc: vertex index out of range")

	// ErrNonPositiveOrder indicates that New was called with n ≤ 0.
	ErrNonPositiveOrder = errors.New("bcc: vertex count must be positive")

	// ErrNotBuilt indicates an accessor was called before Build.
	ErrNotBuilt = errors.New("bcc: Build must be called first")
)

const unvisited = -1

// halfEdge is one adjacency entry: the opposite endpoint and the id of
// the undirected edge it belongs to.
type halfEdge struct {
	to int
	id int
}

// Builder accumulates an undirected graph and computes its biconnected
// structure. Not safe for concurrent use.
type Builder struct {
	n        int
	adj      [][]halfEdge
	numEdges int

	built       bool
	components  [][]int
	bridges     []int
	cutVertices []int

	// DFS working state, valid only during Build.
	index     int
	idx       []int
	low       []int
	edgeStack []int
}

// New constructs a Builder for n vertices (ids 0..n-1).
func New(n int) (*Builder, error) {
	if n <= 0 {
		return nil, ErrNonPositiveOrder
	}

	return &Builder{n: n, adj: make([][]halfEdge, n)}, nil
}

// AddEdge records an undirected edge between u and v and returns its id.
// Ids are assigned sequentially from 0.
func (b *Builder) AddEdge(u, v int) (int, error) {
	if u < 0 || u >= b.n || v < 0 || v >= b.n {
		return 0, ErrVertexRange
	}
	id := b.numEdges
	b.adj[u] = append(b.adj[u], halfEdge{to: v, id: id})
	b.adj[v] = append(b.adj[v], halfEdge{to: u, id: id})
	b.numEdges++

	return id, nil
}

// Build runs the lowlink DFS over every connected component. It may be
// called again after further AddEdge calls; each run starts fresh.
func (b *Builder) Build() {
	b.index = 0
	b.idx = make([]int, b.n)
	b.low = make([]int, b.n)
	b.edgeStack = b.edgeStack[:0]
	b.components = nil
	b.bridges = nil
	b.cutVertices = nil
	for v := range b.idx {
		b.idx[v] = unvisited
	}

	for v := 0; v < b.n; v++ {
		if b.idx[v] == unvisited {
			// -1 marks "no parent edge" for a DFS root.
			b.visit(v, -1)
		}
	}
	b.built = true
}

// Components returns the biconnected components as groups of edge ids.
func (b *Builder) Components() ([][]int, error) {
	if !b.built {
		return nil, ErrNotBuilt
	}

	return b.components, nil
}

// Bridges returns the ids of all bridge edges.
func (b *Builder) Bridges() ([]int, error) {
	if !b.built {
		return nil, ErrNotBuilt
	}

	return b.bridges, nil
}

// CutVertices returns the ids of all articulation points.
func (b *Builder) CutVertices() ([]int, error) {
	if !b.built {
		return nil, ErrNotBuilt
	}

	return b.cutVertices, nil
}

// visit explores v, arriving via edge parentEdge (-1 for roots). Tree
// edges and back edges are pushed on the edge stack; when a child's
// lowlink cannot climb above v, the stack segment down to the tree edge
// is popped as one biconnected component. A root is an articulation
// point iff it has two or more DFS children; any other vertex is one iff
// some child's lowlink fails to climb strictly above it.
func (b *Builder) visit(v, parentEdge int) {
	b.idx[v] = b.index
	b.low[v] = b.index
	b.index++

	children := 0
	isCut := false
	for _, e := range b.adj[v] {
		if e.id == parentEdge {
			continue
		}
		if b.idx[e.to] == unvisited {
			// Tree edge.
			b.edgeStack = append(b.edgeStack, e.id)
			b.visit(e.to, e.id)
			children++
			if b.low[e.to] < b.low[v] {
				b.low[v] = b.low[e.to]
			}
			if b.low[e.to] > b.idx[v] {
				b.bridges = append(b.bridges, e.id)
			}
			if b.low[e.to] >= b.idx[v] {
				if parentEdge != -1 || children >= 2 {
					isCut = true
				}
				b.popComponent(e.id)
			}
		} else if b.idx[e.to] < b.idx[v] {
			// Back edge to an ancestor (or parallel edge): stack it and
			// lower the lowlink.
			b.edgeStack = append(b.edgeStack, e.id)
			if b.idx[e.to] < b.low[v] {
				b.low[v] = b.idx[e.to]
			}
		}
	}
	if isCut {
		b.cutVertices = append(b.cutVertices, v)
	}
}

// popComponent pops stacked edges down to and including treeEdge, which
// closes one biconnected component.
func (b *Builder) popComponent(treeEdge int) {
	var comp []int
	for {
		id := b.edgeStack[len(b.edgeStack)-1]
		b.edgeStack = b.edgeStack[:len(b.edgeStack)-1]
		comp = append(comp, id)
		if id == treeEdge {
			break
		}
	}
	b.components = append(b.components, comp)
}
