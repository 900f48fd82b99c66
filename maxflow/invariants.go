package maxflow

import "fmt"

// verify recomputes the engine's tracked state from first principles and
// compares. The label histogram must match a fresh count over dist, every
// bucket entry must be an active vertex filed under its own label, every
// active flag must be backed by a bucket entry (the pinned sink excepted),
// twin flows must mirror each other, and no interior vertex may hold
// negative excess. Only runs under Options.CheckInvariants.
//
// Complexity: O(V + E) per call, turning the engine quadratic overall.
func (e *engine) verify() error {
	// 1. Histogram: count[d] must equal the number of vertices at label d.
	fresh := make([]int, e.n+1)
	for v := 0; v < e.n; v++ {
		if e.dist[v] < 0 || e.dist[v] > e.n {
			return fmt.Errorf("%w: vertex %d has label %d outside [0, %d]",
				ErrInvariantViolated, v, e.dist[v], e.n)
		}
		fresh[e.dist[v]]++
	}
	for d := 0; d <= e.n; d++ {
		if fresh[d] != e.count[d] {
			return fmt.Errorf("%w: histogram count[%d]=%d, recomputed %d",
				ErrInvariantViolated, d, e.count[d], fresh[d])
		}
	}

	// 2. Buckets: each entry active and present at most once. A vertex is
	//    filed under its label at enqueue time and labels never decrease,
	//    so an entry's bucket index is a lower bound on its current label
	//    (gap jumps may leave entries below the vertex's label).
	seen := make([]bool, e.n)
	for d := 0; d < e.n; d++ {
		for _, v := range e.buckets[d] {
			if !e.active[v] {
				return fmt.Errorf("%w: inactive vertex %d in bucket %d",
					ErrInvariantViolated, v, d)
			}
			if e.dist[v] < d {
				return fmt.Errorf("%w: vertex %d with label %d filed in bucket %d",
					ErrInvariantViolated, v, e.dist[v], d)
			}
			if seen[v] {
				return fmt.Errorf("%w: vertex %d in more than one bucket",
					ErrInvariantViolated, v)
			}
			seen[v] = true
		}
	}

	// 3. Active flags: every active vertex sits in some bucket, except the
	//    sink, whose flag is pinned so it is never discharged.
	for v := 0; v < e.n; v++ {
		if e.active[v] && !seen[v] && v != e.sink {
			return fmt.Errorf("%w: active vertex %d missing from buckets",
				ErrInvariantViolated, v)
		}
	}

	// 4. Twin symmetry and excess sign.
	for u := 0; u < e.n; u++ {
		for i := range e.nw.adj[u] {
			a := &e.nw.adj[u][i]
			if tw := &e.nw.adj[a.To][a.twin]; tw.Flow != -a.Flow {
				return fmt.Errorf("%w: twin flow mismatch on %d→%d: %d vs %d",
					ErrInvariantViolated, a.From, a.To, a.Flow, tw.Flow)
			}
		}
		if u != e.source && u != e.sink && e.excess[u] < 0 {
			return fmt.Errorf("%w: negative excess %d at vertex %d",
				ErrInvariantViolated, e.excess[u], u)
		}
	}

	return nil
}
