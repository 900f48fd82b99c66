// Package maxflow defines the residual-network types, configuration
// options, and sentinel errors for the push–relabel maximum-flow engine.
package maxflow

import "errors"

// Sentinel errors returned by Network construction and MaxFlow.
var (
	// ErrNilNetwork indicates that a nil *Network was passed to MaxFlow.
	ErrNilNetwork = errors.New("maxflow: network is nil")

	// ErrNonPositiveOrder indicates that New was called with n ≤ 0.
	ErrNonPositiveOrder = errors.New("maxflow: vertex count must be positive")

	// ErrVertexRange indicates a vertex id outside [0, n).
	ErrVertexRange = errors.New("maxflow: vertex index out of range")

	// ErrNegativeCapacity indicates an AddEdge call with capacity < 0.
	ErrNegativeCapacity = errors.New("maxflow: negative edge capacity")

	// ErrSameSourceSink indicates that MaxFlow was invoked with source == sink.
	ErrSameSourceSink = errors.New("maxflow: source and sink must differ")

	// ErrFrozen indicates an AddEdge call after the network entered its
	// first MaxFlow computation; the arc set is immutable from then on.
	ErrFrozen = errors.New("maxflow: network is frozen after max-flow computation")

	// ErrInvariantViolated is returned (wrapped, with detail) when
	// Options.CheckInvariants detects inconsistent engine state.
	ErrInvariantViolated = errors.New("maxflow: internal invariant violated")
)

// Options configures diagnostics for MaxFlow. The zero value disables both.
//   - Verbose: print each push and relabel to stdout.
//   - CheckInvariants: after every discharge, recompute the label histogram
//     and bucket membership from scratch and compare against the tracked
//     state. Meant for tests; turns the engine quadratic.
type Options struct {
	Verbose         bool
	CheckInvariants bool
}

// DefaultOptions returns production-safe defaults: no verbosity, no
// invariant checking.
func DefaultOptions() Options {
	return Options{}
}
