package maxflow

import "fmt"

// MaxFlow computes the maximum flow from source to sink in nw using the
// highest-label push–relabel method with gap relabeling, and returns the
// flow value. On return the Flow field of every arc in nw holds a valid
// flow assignment (inspect via Arcs / ResidualReachable).
//
// All per-run state — arc flows, excess, distance labels, active flags,
// buckets, and the label histogram — is re-initialized at entry, so
// repeated calls on the same network are independent and deterministic.
// The first call freezes the network against further AddEdge calls.
//
// Steps:
//  1. Validate nw, source and sink (O(1)).
//  2. Reset arc flows and build fresh per-run arrays (O(V + E)).
//  3. Seed the source with the total capacity of its out-arcs, set the
//     label histogram to n vertices at label 0, enqueue the source, and
//     pin the sink's active flag so it is never discharged.
//  4. Drain buckets highest-label first: pop a vertex from the highest
//     non-empty bucket and discharge it; an empty bucket lowers the
//     cursor. The loop ends when no label has an active vertex left.
//  5. Cancel any excess stranded at retired interior vertices backward
//     along its incoming flow arcs, turning the preflow into a flow.
//  6. The sink's excess is the maximum flow value.
//
// Errors:
//   - ErrNilNetwork     : nw is nil
//   - ErrVertexRange    : source or sink outside [0, n)
//   - ErrSameSourceSink : source == sink
//   - ErrInvariantViolated (wrapped) : only with Options.CheckInvariants
//
// Complexity:
//
//	Time:   O(V²·√E); each label is non-decreasing and bounded by n, each
//	        push either saturates an arc or empties a vertex's excess,
//	        and both event counts are bounded, so termination is certain.
//	Memory: O(V + E).
func MaxFlow(nw *Network, source, sink int, opts Options) (int64, error) {
	// 1. Contract checks before any state is touched.
	if nw == nil {
		return 0, ErrNilNetwork
	}
	if source < 0 || source >= nw.n || sink < 0 || sink >= nw.n {
		return 0, ErrVertexRange
	}
	if source == sink {
		return 0, ErrSameSourceSink
	}

	// The arc set is immutable from here on.
	nw.frozen = true

	e := newEngine(nw, source, sink, opts)

	return e.run()
}

// engine holds the per-run state of one push–relabel computation.
// A fresh engine is built for every MaxFlow call; nothing survives the
// call except the final arc flows on the network.
type engine struct {
	nw           *Network
	opts         Options
	n            int
	source, sink int

	excess  []int64 // excess[v]: flow parked at v awaiting discharge
	dist    []int   // dist[v]: distance label (height), non-decreasing
	count   []int   // count[d]: number of vertices with label d (histogram)
	active  []bool  // active[v]: v is enqueued in some bucket
	buckets [][]int // buckets[d]: active vertices at label d, d in [0, n)
	highest int     // index of the highest possibly non-empty bucket
}

// newEngine resets all per-run state, including arc flows left over from a
// previous computation on the same network.
func newEngine(nw *Network, source, sink int, opts Options) *engine {
	n := nw.n
	e := &engine{
		nw:      nw,
		opts:    opts,
		n:       n,
		source:  source,
		sink:    sink,
		excess:  make([]int64, n),
		dist:    make([]int, n),
		count:   make([]int, n+1),
		active:  make([]bool, n),
		buckets: make([][]int, n),
	}

	// Clear any flow from an earlier run so re-runs are idempotent.
	for u := 0; u < n; u++ {
		for i := range nw.adj[u] {
			nw.adj[u][i].Flow = 0
		}
	}

	return e
}

// run performs initialization and the bucket-draining main loop.
func (e *engine) run() (int64, error) {
	// Seed the source with the total capacity of its out-arcs; the first
	// discharges relabel the source and saturate them one push at a time.
	for i := range e.nw.adj[e.source] {
		e.excess[e.source] += e.nw.adj[e.source][i].Cap
	}

	// Every vertex starts at label 0.
	e.count[0] = e.n

	e.enqueue(e.source)
	// Pin the sink: excess arriving there is the answer, never discharged.
	e.active[e.sink] = true

	// Drain buckets highest-label first. The cursor only moves down when
	// its bucket is empty; enqueue raises it again as needed.
	for e.highest >= 0 {
		if len(e.buckets[e.highest]) == 0 {
			e.highest--

			continue
		}

		last := len(e.buckets[e.highest]) - 1
		v := e.buckets[e.highest][last]
		e.buckets[e.highest] = e.buckets[e.highest][:last]
		e.active[v] = false

		e.discharge(v)

		if e.opts.CheckInvariants {
			if err := e.verify(); err != nil {
				return 0, err
			}
		}
	}

	e.returnExcess()

	return e.excess[e.sink], nil
}

// returnExcess converts the terminal preflow into a flow. The main loop
// retires vertices at label n with excess still parked on them (their
// residual paths to the sink are gone); that excess entered over arcs
// whose flow is still standing, so canceling those arcs backward walks it
// to the source. An arc with negative flow in adj[v] marks inflow from
// its twin; canceling raises it toward zero and never increases any
// positive flow, so the pass terminates. A preflow always keeps a
// vertex's excess at or below its total inflow, so stranded excess can
// be returned in full.
//
// Excess cannot sit on an arc from the sink (the sink is never
// discharged, so no arc leaving it ever carries flow), and the sink's own
// excess is the flow value, so the pass leaves it untouched.
func (e *engine) returnExcess() {
	var stranded []int
	for v := 0; v < e.n; v++ {
		if v != e.source && v != e.sink && e.excess[v] > 0 {
			stranded = append(stranded, v)
		}
	}

	for len(stranded) > 0 {
		last := len(stranded) - 1
		v := stranded[last]
		stranded = stranded[:last]

		for i := 0; i < len(e.nw.adj[v]) && e.excess[v] > 0; i++ {
			a := &e.nw.adj[v][i]
			if a.Flow >= 0 {
				continue
			}

			amt := -a.Flow
			if e.excess[v] < amt {
				amt = e.excess[v]
			}
			a.Flow += amt
			e.nw.adj[a.To][a.twin].Flow -= amt
			e.excess[v] -= amt
			e.excess[a.To] += amt

			if e.opts.Verbose {
				fmt.Printf("maxflow: return %d on %d→%d\n", amt, a.From, a.To)
			}

			if a.To != e.source && a.To != v {
				stranded = append(stranded, a.To)
			}
		}
	}
}

// enqueue marks v active and files it into the bucket for its label.
// Vertices with no excess, already-active vertices, and vertices at
// label ≥ n (provably disconnected from the sink) are never enqueued.
func (e *engine) enqueue(v int) {
	if e.active[v] || e.excess[v] <= 0 || e.dist[v] >= e.n {
		return
	}
	e.active[v] = true
	e.buckets[e.dist[v]] = append(e.buckets[e.dist[v]], v)
	if e.dist[v] > e.highest {
		e.highest = e.dist[v]
	}
}

// push sends flow over the arc at adj[from][i] if it is admissible:
// the arc must point one label downhill (dist[from] == dist[to]+1) and
// have positive residual capacity. The amount is min(excess, residual).
// The twin's flow moves symmetrically, and the head is enqueued if it
// became active.
func (e *engine) push(from, i int) {
	a := &e.nw.adj[from][i]
	amt := e.excess[from]
	if r := a.Residual(); r < amt {
		amt = r
	}
	if amt <= 0 || e.dist[from] != e.dist[a.To]+1 {
		return
	}

	a.Flow += amt
	e.nw.adj[a.To][a.twin].Flow -= amt
	e.excess[from] -= amt
	e.excess[a.To] += amt

	if e.opts.Verbose {
		fmt.Printf("maxflow: push %d on %d→%d\n", amt, a.From, a.To)
	}

	e.enqueue(a.To)
}

// relabel lifts v to one more than the lowest label reachable over a
// positive-residual out-arc, or to n when no residual arc remains (v is
// then disconnected from the sink and will never push again). The label
// histogram tracks the move, and v is re-enqueued: relabel only runs when
// the discharge loop found no admissible push, so v still has excess.
func (e *engine) relabel(v int) {
	e.count[e.dist[v]]--
	e.dist[v] = e.n
	for i := range e.nw.adj[v] {
		a := &e.nw.adj[v][i]
		if a.Residual() > 0 && e.dist[a.To]+1 < e.dist[v] {
			e.dist[v] = e.dist[a.To] + 1
		}
	}
	e.count[e.dist[v]]++

	if e.opts.Verbose {
		fmt.Printf("maxflow: relabel %d → %d\n", v, e.dist[v])
	}

	e.enqueue(v)
}

// gap handles the moment label k loses its last occupant: every vertex at
// label k or above is disconnected from the sink in the residual graph,
// so all of them jump straight to label n in one batch instead of
// climbing there one relabel at a time. Affected vertices with excess are
// re-enqueued (enqueue itself rejects label n, so they simply retire).
func (e *engine) gap(k int) {
	for v := 0; v < e.n; v++ {
		if e.dist[v] < k {
			continue
		}
		e.count[e.dist[v]]--
		if e.dist[v] < e.n {
			e.dist[v] = e.n
		}
		e.count[e.dist[v]]++
		e.enqueue(v)
	}
}

// discharge sweeps v's out-arcs once, pushing while excess remains. If
// excess survives the sweep, no arc was admissible: either fire the gap
// heuristic (v is the sole occupant of its label) or relabel v, which
// re-enqueues it for a later round at its new height.
func (e *engine) discharge(v int) {
	for i := 0; i < len(e.nw.adj[v]) && e.excess[v] > 0; i++ {
		e.push(v, i)
	}

	if e.excess[v] > 0 {
		if e.count[e.dist[v]] == 1 {
			e.gap(e.dist[v])
		} else {
			e.relabel(v)
		}
	}
}
