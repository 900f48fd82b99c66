// Package matching provides maximum bipartite matching (Hopcroft–Karp)
// with minimum-vertex-cover extraction, and stable matching
// (Gale–Shapley), over dense integer ids.
//
// Hopcroft–Karp alternates a BFS that layers the graph by shortest
// alternating paths from free left vertices with a DFS sweep that
// augments along vertex-disjoint shortest paths, and finishes in
// O(E·√V). König's theorem then turns the matching into a minimum
// vertex cover (whose complement is a maximum independent set).
package matching

import "errors"

// Sentinel errors returned by the matching package.
var (
	// ErrVertexRange indicates a left or right id outside its side's range.
	ErrVertexRange = errors.New("matching: vertex index out of range")

	// ErrNonPositiveOrder indicates a side with a non-positive vertex count.
	ErrNonPositiveOrder = errors.New("matching: side sizes must be positive")

	// ErrNotMatched indicates MinimumVertexCover was called before Match.
	ErrNotMatched = errors.New("matching: Match must be called first")
)

const infinite = int(^uint(0) >> 1)

// Bipartite accumulates a bipartite graph with nLeft left vertices and
// nRight right vertices and computes a maximum matching.
// Not safe for concurrent use.
type Bipartite struct {
	nLeft, nRight int
	adj           [][]int // adj[l] lists right neighbors of left vertex l

	matched bool
	matchL  []int // matchL[l] = matched right vertex or -1
	matchR  []int // matchR[r] = matched left vertex or -1
	dist    []int // BFS layer of each left vertex
}

// NewBipartite constructs a matcher for the given side sizes.
func NewBipartite(nLeft, nRight int) (*Bipartite, error) {
	if nLeft <= 0 || nRight <= 0 {
		return nil, ErrNonPositiveOrder
	}

	return &Bipartite{nLeft: nLeft, nRight: nRight, adj: make([][]int, nLeft)}, nil
}

// AddEdge records an edge between left vertex l and right vertex r.
func (b *Bipartite) AddEdge(l, r int) error {
	if l < 0 || l >= b.nLeft || r < 0 || r >= b.nRight {
		return ErrVertexRange
	}
	b.adj[l] = append(b.adj[l], r)

	return nil
}

// Match computes a maximum matching and returns its size. It may be
// called again after further AddEdge calls; each run starts from an
// empty matching.
func (b *Bipartite) Match() int {
	b.matchL = make([]int, b.nLeft)
	b.matchR = make([]int, b.nRight)
	for i := range b.matchL {
		b.matchL[i] = -1
	}
	for i := range b.matchR {
		b.matchR[i] = -1
	}
	b.dist = make([]int, b.nLeft)

	size := 0
	// Each phase augments along a maximal set of vertex-disjoint shortest
	// alternating paths; O(√V) phases suffice.
	for b.layer() {
		for l := 0; l < b.nLeft; l++ {
			if b.matchL[l] == -1 && b.augment(l) {
				size++
			}
		}
	}
	b.matched = true

	return size
}

// LeftPairs returns, for every left vertex, its matched right vertex or -1.
func (b *Bipartite) LeftPairs() ([]int, error) {
	if !b.matched {
		return nil, ErrNotMatched
	}

	return b.matchL, nil
}

// RightPairs returns, for every right vertex, its matched left vertex or -1.
func (b *Bipartite) RightPairs() ([]int, error) {
	if !b.matched {
		return nil, ErrNotMatched
	}

	return b.matchR, nil
}

// layer runs the BFS phase: free left vertices start at layer 0, and a
// step follows a non-matching edge to the right side and the matching
// edge back to the left side. Reports whether any augmenting path exists.
func (b *Bipartite) layer() bool {
	queue := make([]int, 0, b.nLeft)
	for l := 0; l < b.nLeft; l++ {
		if b.matchL[l] == -1 {
			b.dist[l] = 0
			queue = append(queue, l)
		} else {
			b.dist[l] = infinite
		}
	}

	found := false
	for len(queue) > 0 {
		l := queue[0]
		queue = queue[1:]
		for _, r := range b.adj[l] {
			next := b.matchR[r]
			if next == -1 {
				// A free right vertex ends a shortest augmenting path.
				found = true
			} else if b.dist[next] == infinite {
				b.dist[next] = b.dist[l] + 1
				queue = append(queue, next)
			}
		}
	}

	return found
}

// augment runs the DFS phase from left vertex l, following only edges
// that advance one BFS layer, flipping matched/unmatched status along
// the found path. A failed vertex has its layer poisoned so sibling
// searches skip it.
func (b *Bipartite) augment(l int) bool {
	for _, r := range b.adj[l] {
		next := b.matchR[r]
		if next == -1 || (b.dist[next] == b.dist[l]+1 && b.augment(next)) {
			b.matchL[l] = r
			b.matchR[r] = l

			return true
		}
	}
	b.dist[l] = infinite

	return false
}

// MinimumVertexCover derives a minimum vertex cover from the maximum
// matching via König's theorem: starting from free left vertices,
// alternate non-matching edges rightward and matching edges leftward;
// the cover is the unvisited left vertices plus the visited right
// vertices. The complement is a maximum independent set.
//
// Complexity: O(V + E).
func (b *Bipartite) MinimumVertexCover() (leftCover, rightCover []bool, err error) {
	if !b.matched {
		return nil, nil, ErrNotMatched
	}

	visitedL := make([]bool, b.nLeft)
	visitedR := make([]bool, b.nRight)
	queue := make([]int, 0, b.nLeft)
	for l := 0; l < b.nLeft; l++ {
		if b.matchL[l] == -1 {
			visitedL[l] = true
			queue = append(queue, l)
		}
	}
	for len(queue) > 0 {
		l := queue[0]
		queue = queue[1:]
		for _, r := range b.adj[l] {
			if visitedR[r] {
				continue
			}
			visitedR[r] = true
			if next := b.matchR[r]; next != -1 && !visitedL[next] {
				visitedL[next] = true
				queue = append(queue, next)
			}
		}
	}

	leftCover = make([]bool, b.nLeft)
	rightCover = make([]bool, b.nRight)
	for l := range leftCover {
		leftCover[l] = !visitedL[l]
	}
	copy(rightCover, visitedR)

	return leftCover, rightCover, nil
}
