// Package mst computes minimum spanning trees of undirected weighted
// graphs over dense vertex ids [0, n) using Kruskal's algorithm with a
// union–find structure (path halving + union by rank).
//
// If the graph is disconnected the result is a minimum spanning forest:
// one tree per connected component. Callers needing connectivity can
// compare len(tree) against n-1.
//
// Complexity:
//
//   - Time:   O(E log E + α(V)·E) ≈ O(E log V)
//   - Memory: O(E + V)
package mst

import (
	"errors"
	"sort"
)

// Sentinel errors returned by the mst package.
var (
	// ErrVertexRange indicates a vertex id outside [0, n).
	ErrVertexRange = errors.New("mst: vertex index out of range")

	// ErrNonPositiveOrder indicates that New was called with n ≤ 0.
	ErrNonPositiveOrder = errors.New("mst: vertex count must be positive")
)

// Edge is one undirected weighted edge of the input graph.
type Edge struct {
	U, V   int
	Weight int64
}

// Kruskal accumulates edges and produces a minimum spanning forest.
// Not safe for concurrent use.
type Kruskal struct {
	n     int
	edges []Edge
}

// New constructs a Kruskal builder for n vertices (ids 0..n-1).
func New(n int) (*Kruskal, error) {
	if n <= 0 {
		return nil, ErrNonPositiveOrder
	}

	return &Kruskal{n: n}, nil
}

// AddEdge records an undirected edge between u and v with the given
// weight. Self-loops are accepted but can never join two components, so
// they simply never enter the forest.
func (k *Kruskal) AddEdge(u, v int, weight int64) error {
	if u < 0 || u >= k.n || v < 0 || v >= k.n {
		return ErrVertexRange
	}
	k.edges = append(k.edges, Edge{U: u, V: v, Weight: weight})

	return nil
}

// Build returns the edges of a minimum spanning forest and their total
// weight. The input edge list is left untouched; Build sorts a copy, so
// repeated calls are independent.
//
// Steps:
//  1. Copy and stable-sort edges by ascending weight (insertion order
//     breaks ties, keeping results deterministic).
//  2. Sweep the sorted edges; an edge joins the forest iff its endpoints
//     lie in different union–find components.
//  3. Stop early once n-1 edges are chosen.
func (k *Kruskal) Build() ([]Edge, int64) {
	sorted := make([]Edge, len(k.edges))
	copy(sorted, k.edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	ds := newDisjointSet(k.n)
	var (
		forest []Edge
		total  int64
	)
	for _, e := range sorted {
		if !ds.union(e.U, e.V) {
			continue
		}
		forest = append(forest, e)
		total += e.Weight
		if len(forest) == k.n-1 {
			break
		}
	}

	return forest, total
}

// disjointSet is a classic union–find over [0, n) with path halving
// and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for v := range ds.parent {
		ds.parent[v] = v
	}

	return ds
}

// find walks to the root, halving the path as it goes.
func (ds *disjointSet) find(v int) int {
	for ds.parent[v] != v {
		ds.parent[v] = ds.parent[ds.parent[v]]
		v = ds.parent[v]
	}

	return v
}

// union merges the sets of u and v, reporting whether they were distinct.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	if ds.rank[ru] < ds.rank[rv] {
		ru, rv = rv, ru
	}
	ds.parent[rv] = ru
	if ds.rank[ru] == ds.rank[rv] {
		ds.rank[ru]++
	}

	return true
}
