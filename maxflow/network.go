package maxflow

// Arc is one directed unit of residual capacity. Every AddEdge call
// produces two Arcs linked as mutual twins: the forward arc carries the
// requested capacity, the backward twin carries capacity 0. Flow on the
// twin is always the negation of flow on the arc, so Residual() on the
// twin grows exactly as flow is pushed forward.
type Arc struct {
	From int   // tail vertex id
	To   int   // head vertex id
	Cap  int64 // capacity, ≥ 0
	Flow int64 // current flow; negative values encode reverse residual

	// twin is the index of the paired reverse arc inside adj[To].
	twin int
}

// Residual reports the remaining capacity available on the arc.
func (a Arc) Residual() int64 { return a.Cap - a.Flow }

// Network is a residual flow network over dense vertex ids [0, n).
// It owns the arc adjacency lists; MaxFlow mutates only the Flow field of
// existing arcs and never adds or removes arcs.
type Network struct {
	n      int     // vertex count
	adj    [][]Arc // adj[u] lists every arc leaving u (forward and twin)
	frozen bool    // set by the first MaxFlow call; AddEdge refuses afterward
}

// New constructs an empty residual network with n vertices (ids 0..n-1).
// Returns ErrNonPositiveOrder if n ≤ 0.
func New(n int) (*Network, error) {
	if n <= 0 {
		return nil, ErrNonPositiveOrder
	}

	return &Network{n: n, adj: make([][]Arc, n)}, nil
}

// Order reports the vertex count the network was built with.
func (nw *Network) Order() int { return nw.n }

// AddEdge inserts a directed edge u→v with the given capacity:
// a forward arc (capacity cap, flow 0) appended to adj[u] and a backward
// twin (capacity 0, flow 0) appended to adj[v], each recording the other's
// slot index.
//
// Self-loops are legal but need one adjustment: when u == v both arcs land
// in the same adjacency list, so the forward arc's twin index must skip
// the slot the forward arc itself occupies, i.e. it is bumped by one.
//
// Errors:
//   - ErrVertexRange      : u or v outside [0, n)
//   - ErrNegativeCapacity : cap < 0
//   - ErrFrozen           : called after the first MaxFlow computation
//
// Complexity: O(1) amortized per call.
func (nw *Network) AddEdge(u, v int, capacity int64) error {
	// 1. Contract checks, fail fast before touching the adjacency lists.
	if u < 0 || u >= nw.n || v < 0 || v >= nw.n {
		return ErrVertexRange
	}
	if capacity < 0 {
		return ErrNegativeCapacity
	}
	if nw.frozen {
		return ErrFrozen
	}

	// 2. Forward arc u→v: its twin will sit at the current end of adj[v].
	forward := Arc{From: u, To: v, Cap: capacity, twin: len(nw.adj[v])}
	if u == v {
		// Both arcs share adj[u]; the forward arc occupies the slot the
		// twin index would otherwise name, so skip it.
		forward.twin++
	}
	nw.adj[u] = append(nw.adj[u], forward)

	// 3. Backward twin v→u with zero capacity, pointing back at the
	//    forward arc's slot.
	nw.adj[v] = append(nw.adj[v], Arc{From: v, To: u, Cap: 0, twin: len(nw.adj[u]) - 1})

	return nil
}

// Arcs returns a copy of the arcs leaving u, including backward twins.
// After MaxFlow returns, the Flow fields hold the final flow assignment;
// callers reconstruct per-edge flow or a minimum cut from them.
// Returns ErrVertexRange if u is outside [0, n).
func (nw *Network) Arcs(u int) ([]Arc, error) {
	if u < 0 || u >= nw.n {
		return nil, ErrVertexRange
	}
	out := make([]Arc, len(nw.adj[u]))
	copy(out, nw.adj[u])

	return out, nil
}

// ResidualReachable reports, for every vertex, whether it is reachable
// from source via arcs with positive residual capacity. Called after
// MaxFlow returns, the true entries form the source side of a minimum
// cut (max-flow/min-cut duality); the cut capacity is the sum of
// capacities of original edges leaving that set.
//
// Complexity: O(V + E) breadth-first traversal.
func (nw *Network) ResidualReachable(source int) ([]bool, error) {
	if source < 0 || source >= nw.n {
		return nil, ErrVertexRange
	}

	seen := make([]bool, nw.n)
	seen[source] = true
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for i := range nw.adj[u] {
			a := &nw.adj[u][i]
			if a.Residual() > 0 && !seen[a.To] {
				seen[a.To] = true
				queue = append(queue, a.To)
			}
		}
	}

	return seen, nil
}
