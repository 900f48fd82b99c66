// Package eulertour constructs Euler tours — walks traversing every edge
// exactly once — on directed or undirected multigraphs over dense vertex
// ids [0, n).
//
// The construction splices sub-cycles into a linked list: walking the
// tour built so far, any vertex with unused edges grows a detour that
// returns to it, which is inserted in place. Each edge is consumed once,
// so the whole construction is O(V + E) with no recursion.
//
// Tour requires a closed tour (Euler circuit) from the start vertex:
// every vertex must have equal in- and out-degree (directed) or even
// degree (undirected), and every edge must be reachable from the start.
package eulertour

import (
	"container/list"
	"errors"
)

// Sentinel errors returned by the eulertour package.
var (
	// ErrVertexRange indicates a vertex id outside [0, n).
	ErrVertexRange = errors.New("eulertour: vertex index out of range")

	// ErrNonPositiveOrder indicates that New was called with n ≤ 0.
	ErrNonPositiveOrder = errors.New("eulertour: vertex count must be positive")

	// ErrUnbalanced indicates degree conditions that rule out a closed
	// tour: unequal in/out-degree (directed) or odd degree (undirected).
	ErrUnbalanced = errors.New("eulertour: no closed tour exists (unbalanced degrees)")

	// ErrDisconnected indicates edges unreachable from the start vertex.
	ErrDisconnected = errors.New("eulertour: not all edges reachable from start")
)

// halfEdge is one adjacency entry: opposite endpoint and edge id
// (undirected edges share one id across their two entries).
type halfEdge struct {
	to int
	id int
}

// Builder accumulates a multigraph and constructs Euler tours.
// Not safe for concurrent use.
type Builder struct {
	n        int
	directed bool
	adj      [][]halfEdge
	numEdges int
	inDeg    []int
	outDeg   []int
}

// New constructs a Builder for n vertices (ids 0..n-1). The directed
// flag fixes the interpretation of every subsequent AddEdge call.
func New(n int, directed bool) (*Builder, error) {
	if n <= 0 {
		return nil, ErrNonPositiveOrder
	}

	return &Builder{
		n:        n,
		directed: directed,
		adj:      make([][]halfEdge, n),
		inDeg:    make([]int, n),
		outDeg:   make([]int, n),
	}, nil
}

// AddEdge records an edge between u and v. Parallel edges and self-loops
// are legal; each AddEdge call is one traversable edge.
func (b *Builder) AddEdge(u, v int) error {
	if u < 0 || u >= b.n || v < 0 || v >= b.n {
		return ErrVertexRange
	}
	id := b.numEdges
	b.adj[u] = append(b.adj[u], halfEdge{to: v, id: id})
	b.outDeg[u]++
	b.inDeg[v]++
	if !b.directed {
		b.adj[v] = append(b.adj[v], halfEdge{to: u, id: id})
		b.outDeg[v]++
		b.inDeg[u]++
	}
	b.numEdges++

	return nil
}

// Tour returns a closed Euler tour starting and ending at start, as the
// sequence of visited vertices (length numEdges+1 for a non-empty edge
// set). Degree balance is checked up front; a splice pass that cannot
// consume every edge reports ErrDisconnected.
func (b *Builder) Tour(start int) ([]int, error) {
	if start < 0 || start >= b.n {
		return nil, ErrVertexRange
	}
	for v := 0; v < b.n; v++ {
		if b.directed && b.inDeg[v] != b.outDeg[v] {
			return nil, ErrUnbalanced
		}
		if !b.directed && b.outDeg[v]%2 != 0 {
			return nil, ErrUnbalanced
		}
	}

	// next[v] is the cursor into adj[v]; used[id] consumes an undirected
	// edge for both of its adjacency entries at once.
	next := make([]int, b.n)
	used := make([]bool, b.numEdges)
	consumed := 0

	tour := list.New()
	tour.PushBack(start)

	// Walk the tour; at each vertex splice in a detour while unused edges
	// remain there. Every detour closes back on its origin because the
	// degree conditions hold.
	for el := tour.Front(); el != nil; el = el.Next() {
		u := el.Value.(int)
		at := el
		v := u
		for {
			// Skip edges already consumed from the other endpoint.
			for next[v] < len(b.adj[v]) && used[b.adj[v][next[v]].id] {
				next[v]++
			}
			if next[v] == len(b.adj[v]) {
				break
			}
			he := b.adj[v][next[v]]
			used[he.id] = true
			next[v]++
			consumed++
			v = he.to
			at = tour.InsertAfter(v, at)
			if v == u {
				break
			}
		}
	}

	if consumed != b.numEdges {
		return nil, ErrDisconnected
	}

	out := make([]int, 0, tour.Len())
	for el := tour.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(int))
	}

	return out, nil
}
