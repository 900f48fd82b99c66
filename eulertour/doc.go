// Package eulertour constructs Euler tours, walks traversing every edge
// exactly once, on directed or undirected multigraphs over dense vertex
// ids [0, n).
//
// The construction splices sub-cycles into a linked list: walking the
// tour built so far, any vertex with unused incident edges grows a detour
// that must return to it, and the detour is inserted in place. Each edge
// is consumed exactly once and the cursor never revisits exhausted
// adjacency, so the whole construction runs in O(V + E) with no
// recursion.
//
// Tour produces a closed tour (Euler circuit) from the start vertex. Two
// checks run before and after the splice: the degree balance check
// (every vertex needs equal in- and out-degree for directed graphs, or
// even degree for undirected ones), and the coverage check (every edge
// must have been consumed, which fails when the edge set is split across
// components the start cannot reach).
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (tour list and per-vertex adjacency cursors)
//
// # API
//
//	b, _ := eulertour.New(3, true)
//	_ = b.AddEdge(0, 1)
//	_ = b.AddEdge(1, 2)
//	_ = b.AddEdge(2, 0)
//	tour, err := b.Tour(0)
//
// # Contract
//
// Parallel edges and self-loops are supported; an undirected edge may be
// traversed in either direction but only once. An empty edge set yields
// the single-vertex tour [start]. Unbalanced degrees return
// ErrUnbalanced; unreached edges return ErrDisconnected.
package eulertour
