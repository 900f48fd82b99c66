// Package matching provides maximum bipartite matching with
// minimum-vertex-cover extraction, and stable matching, over dense
// integer ids.
//
// Bipartite holds a bipartite graph with nLeft left and nRight right
// vertices, each side indexed from 0. Match runs Hopcroft–Karp: a BFS
// layers the graph by shortest alternating paths from free left vertices,
// then a DFS sweep augments along a maximal set of vertex-disjoint
// shortest paths, and the two repeat until no augmenting path remains.
// The phase count is O(√V), giving O(E·√V) overall.
//
// MinimumVertexCover applies König's theorem to the final matching: an
// alternating traversal from the free left vertices marks reachable
// vertices, and the cover is the unmarked left side plus the marked right
// side. Its size equals the matching size, and the complement of the
// cover is a maximum independent set.
//
// StableMatch implements Gale–Shapley proposals on rank tables: proposers
// propose in preference order, reviewers hold the best offer seen so far,
// and the result is stable (no proposer/reviewer pair prefers each other
// to their assigned partners) and proposer-optimal.
//
// Complexity:
//
//   - Match:       O(E·√V) time, O(V + E) memory
//   - StableMatch: O(n²) time, O(n²) memory for the rank tables
//
// # API
//
//	b, _ := matching.NewBipartite(3, 3)
//	_ = b.AddEdge(0, 0)
//	_ = b.AddEdge(1, 0)
//	size := b.Match()
//	left, _ := b.LeftPairs()
//
// # Contract
//
// LeftPairs, RightPairs and MinimumVertexCover require a prior Match
// (ErrNotMatched otherwise); unmatched vertices map to -1. Match may be
// rerun after further AddEdge calls and recomputes from scratch.
// StableMatch requires two n×n rank tables where every row is a
// permutation of 0..n-1 (ErrBadRankTable otherwise).
package matching
