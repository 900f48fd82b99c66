// Package maxflow computes maximum s–t flow on a dense-index residual
// network using the highest-label push–relabel method with the gap
// relabeling heuristic.
//
// The package is built around two pieces:
//
//   - Network: the residual network. Every AddEdge(u, v, cap) inserts a
//     forward arc u→v with the given capacity and a paired backward arc
//     v→u with capacity 0; the two arcs are linked as mutual twins so that
//     pushing flow over one automatically creates residual capacity on the
//     other (flow(twin) == -flow(arc) at all times).
//
//   - MaxFlow: the push–relabel driver. It maintains, per vertex, an
//     excess value, a distance label, an active flag, membership in a
//     bucket keyed by label, and a label-occupancy histogram. The engine
//     always discharges a vertex from the highest non-empty bucket
//     ("highest-label" rule) and batch-relabels everything above a label
//     whose occupancy drops to zero ("gap" heuristic).
//
// The algorithm is a preflow variant: intermediate states park excess at
// interior vertices. When the bucket loop ends, excess may still be
// stranded at vertices the gap heuristic retired (their residual paths to
// the sink are gone), so a final pass cancels that excess backward along
// its incoming flow arcs until it reaches the source. The per-arc
// assignment MaxFlow leaves on the Network is therefore a valid flow:
// capacities respected, interior vertices balanced. Inspect it with Arcs
// after MaxFlow returns.
//
// Complexity:
//
//   - Time:   O(V²·√E) with the highest-label rule and gap relabeling
//   - Memory: O(V + E) for arcs, labels, excess, buckets and histogram
//
// The whole computation is iterative (bucket draining, no recursion), so
// stack depth stays O(1) regardless of graph size.
//
// # API
//
//	nw, _ := maxflow.New(4)
//	_ = nw.AddEdge(0, 1, 10)
//	_ = nw.AddEdge(1, 3, 4)
//	value, err := maxflow.MaxFlow(nw, 0, 3, maxflow.DefaultOptions())
//
// Options configures diagnostics only:
//
//	type Options struct {
//	    Verbose         bool // print every push and relabel
//	    CheckInvariants bool // verify histogram/bucket/twin invariants after each discharge
//	}
//
// CheckInvariants is intended for tests: it recomputes the label histogram
// and bucket membership from scratch after every discharge and fails the
// computation with ErrInvariantViolated on any mismatch.
//
// # Contract
//
// Vertex ids are dense integers in [0, n). Capacities must be
// non-negative. Source and sink must differ. AddEdge must not be called
// after the first MaxFlow invocation on the network (ErrFrozen). All
// contract violations are surfaced as sentinel errors before any
// computation proceeds; there is no partial-failure mode. Sizing the
// numeric type is the caller's job: capacities are int64 and the sum of
// all source-adjacent capacities must not overflow int64.
//
// MaxFlow fully re-initializes all per-run state, including arc flows, at
// entry, so repeated invocations on the same network are independent and
// yield identical results. A Network must not be shared by concurrent
// MaxFlow calls without external synchronization.
//
// Min-cut extraction is deliberately not part of the engine. After MaxFlow
// returns, the vertices reachable from the source via positive-residual
// arcs form the source side of a minimum cut; ResidualReachable performs
// that traversal.
package maxflow
