package matching

import (
	"errors"
	"sort"
)

// ErrBadRankTable indicates rank tables that are not square n×n matrices
// of matching size.
var ErrBadRankTable = errors.New("matching: rank tables must be n×n and equally sized")

// StableMatch computes a stable matching between n proposers and n
// reviewers using the Gale–Shapley deferred-acceptance algorithm.
//
// proposerRank[p][r] orders reviewers from proposer p's point of view:
// lower means preferred. reviewerRank[r][p] does the same for reviewers.
// The result is proposer-optimal: match[p] is the reviewer assigned to
// proposer p, and no proposer/reviewer pair would both rather be with
// each other than with their assigned partners.
//
// Steps:
//  1. Build each proposer's preference queue by sorting reviewer ids by
//     descending rank, so the most preferred reviewer pops off the tail.
//  2. While an unengaged proposer remains, it proposes to the best
//     reviewer it has not yet tried. A free reviewer accepts; an engaged
//     reviewer trades up iff it ranks the newcomer better, freeing the
//     previous partner.
//  3. Every proposer proposes to each reviewer at most once, so the loop
//     runs at most n² proposals.
//
// Complexity: O(n² log n) for the sort, O(n²) for the proposals.
func StableMatch(proposerRank, reviewerRank [][]int) ([]int, error) {
	n := len(proposerRank)
	if n == 0 || len(reviewerRank) != n {
		return nil, ErrBadRankTable
	}
	for i := 0; i < n; i++ {
		if len(proposerRank[i]) != n || len(reviewerRank[i]) != n {
			return nil, ErrBadRankTable
		}
	}

	// queue[p] holds reviewers in descending rank; the tail is p's best
	// untried reviewer.
	queue := make([][]int, n)
	free := make([]int, 0, n)
	for p := 0; p < n; p++ {
		q := make([]int, n)
		for r := range q {
			q[r] = r
		}
		rank := proposerRank[p]
		sort.SliceStable(q, func(i, j int) bool { return rank[q[i]] > rank[q[j]] })
		queue[p] = q
		free = append(free, p)
	}

	partner := make([]int, n) // partner[r] = engaged proposer or -1
	for r := range partner {
		partner[r] = -1
	}

	for len(free) > 0 {
		p := free[len(free)-1]
		q := queue[p]
		r := q[len(q)-1]
		queue[p] = q[:len(q)-1]

		switch cur := partner[r]; {
		case cur == -1:
			partner[r] = p
			free = free[:len(free)-1]
		case reviewerRank[r][p] < reviewerRank[r][cur]:
			// r trades up; the displaced proposer becomes free again.
			free[len(free)-1] = cur
			partner[r] = p
		}
		// Otherwise p stays free and will propose further down its queue.
	}

	match := make([]int, n)
	for r, p := range partner {
		match[p] = r
	}

	return match, nil
}
