// Package dijkstra defines the graph type and sentinel errors for the
// single-source shortest-path implementation.
package dijkstra

import "errors"

// Sentinel errors returned by the dijkstra package.
var (
	// ErrVertexRange indicates a vertex id outside [0, n).
	ErrVertexRange = errors.New("dijkstra: vertex index out of range")

	// ErrNonPositiveOrder indicates that New was called with n ≤ 0.
	ErrNonPositiveOrder = errors.New("dijkstra: vertex count must be positive")

	// ErrNegativeWeight indicates an AddEdge call with weight < 0;
	// Dijkstra's relaxation argument requires non-negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")
)

// Unreachable is the distance reported for vertices the source cannot
// reach (math.MaxInt64).
const Unreachable = int64(1<<63 - 1)

// halfEdge is one adjacency entry: target vertex and edge weight.
type halfEdge struct {
	to     int
	weight int64
}

// Graph is a weighted graph over dense vertex ids [0, n). It is built
// once via AddEdge calls and then queried with ShortestPaths; the two
// phases must not interleave concurrently.
type Graph struct {
	n        int
	directed bool
	adj      [][]halfEdge
}

// New constructs a Graph with n vertices (ids 0..n-1). If directed is
// false, every AddEdge inserts the reverse arc as well.
func New(n int, directed bool) (*Graph, error) {
	if n <= 0 {
		return nil, ErrNonPositiveOrder
	}

	return &Graph{n: n, directed: directed, adj: make([][]halfEdge, n)}, nil
}

// AddEdge records an edge u→v with the given non-negative weight
// (and v→u for undirected graphs).
func (g *Graph) AddEdge(u, v int, weight int64) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return ErrVertexRange
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	g.adj[u] = append(g.adj[u], halfEdge{to: v, weight: weight})
	if !g.directed {
		g.adj[v] = append(g.adj[v], halfEdge{to: u, weight: weight})
	}

	return nil
}
