package scc

// TwoSAT derives a satisfying assignment for a 2-SAT instance from the
// implication graph's component structure. The graph must already hold
// one vertex per literal and an edge for every implication, and Build
// must have been called.
//
// neg maps each literal to its negation and must be an involution over
// [0, n): neg[neg[x]] == x, neg[x] != x.
//
// The rule exploits the component emission order (reverse topological):
// walking components sink-first, an unassigned literal is set true and
// its negation false. A literal sharing a component with its negation
// makes the instance unsatisfiable (ErrBadNegation).
//
// Returns assignment[x] in {0, 1} for every literal.
//
// Complexity: O(V).
func (t *Tarjan) TwoSAT(neg []int) ([]int, error) {
	if !t.built {
		return nil, ErrNotBuilt
	}
	if len(neg) != t.n {
		return nil, ErrBadNegation
	}
	for x, nx := range neg {
		if nx < 0 || nx >= t.n || nx == x || neg[nx] != x {
			return nil, ErrBadNegation
		}
		if t.componentOf[x] == t.componentOf[nx] {
			return nil, ErrBadNegation
		}
	}

	assignment := make([]int, t.n)
	for i := range assignment {
		assignment[i] = -1
	}
	for _, comp := range t.components {
		for _, x := range comp {
			if assignment[x] == -1 {
				assignment[x] = 1
				assignment[neg[x]] = 0
			}
		}
	}

	return assignment, nil
}
