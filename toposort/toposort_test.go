package toposort_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/graphbook/graphbook/toposort"
)

// assertTopological verifies that order is a permutation of [0, n) in
// which every edge points forward.
func assertTopological(t *testing.T, n int, edges [][2]int, order []int) {
	t.Helper()
	require.Len(t, order, n)
	pos := make([]int, n)
	seen := make([]bool, n)
	for i, v := range order {
		require.False(t, seen[v], "vertex %d appears twice", v)
		seen[v] = true
		pos[v] = i
	}
	for _, e := range edges {
		require.Less(t, pos[e[0]], pos[e[1]],
			"edge %d→%d points backward", e[0], e[1])
	}
}

func TestSort_Diamond(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}
	s, err := toposort.New(4)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, s.AddEdge(e[0], e[1]))
	}

	order, err := s.Sort()
	require.NoError(t, err)
	assertTopological(t, 4, edges, order)
}

func TestSort_IsolatedVertices(t *testing.T) {
	s, err := toposort.New(3)
	require.NoError(t, err)

	order, err := s.Sort()
	require.NoError(t, err)
	assertTopological(t, 3, nil, order)
}

func TestSort_CycleDetected(t *testing.T) {
	s, err := toposort.New(3)
	require.NoError(t, err)
	require.NoError(t, s.AddEdge(0, 1))
	require.NoError(t, s.AddEdge(1, 2))
	require.NoError(t, s.AddEdge(2, 0))

	_, err = s.Sort()
	require.ErrorIs(t, err, toposort.ErrCycleDetected)
}

func TestSort_SelfLoopIsACycle(t *testing.T) {
	s, err := toposort.New(2)
	require.NoError(t, err)
	require.NoError(t, s.AddEdge(1, 1))

	_, err = s.Sort()
	require.ErrorIs(t, err, toposort.ErrCycleDetected)
}

func TestSort_Contracts(t *testing.T) {
	_, err := toposort.New(0)
	require.ErrorIs(t, err, toposort.ErrNonPositiveOrder)

	s, err := toposort.New(2)
	require.NoError(t, err)
	require.ErrorIs(t, s.AddEdge(0, 2), toposort.ErrVertexRange)
	require.ErrorIs(t, s.AddEdge(-1, 0), toposort.ErrVertexRange)
}

// TestSort_AgainstGonum cross-checks cycle detection and order validity
// against gonum's topological sort on random DAGs and random digraphs.
func TestSort_AgainstGonum(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 4 + r.Intn(12)
		m := r.Intn(3 * n)
		acyclic := trial%2 == 0

		s, err := toposort.New(n)
		require.NoError(t, err)
		g := simple.NewDirectedGraph()
		for v := 0; v < n; v++ {
			g.AddNode(simple.Node(v))
		}

		edges := make([][2]int, 0, m)
		for i := 0; i < m; i++ {
			u, v := r.Intn(n), r.Intn(n)
			if u == v {
				continue
			}
			if acyclic && u > v {
				// Forcing edges id-ascending keeps the graph acyclic.
				u, v = v, u
			}
			edges = append(edges, [2]int{u, v})
			require.NoError(t, s.AddEdge(u, v))
			g.SetEdge(g.NewEdge(simple.Node(u), simple.Node(v)))
		}

		order, err := s.Sort()
		_, gonumErr := topo.Sort(g)
		if err != nil {
			require.ErrorIs(t, err, toposort.ErrCycleDetected)
			require.Error(t, gonumErr, "trial %d: gonum found no cycle", trial)

			continue
		}
		require.NoError(t, gonumErr, "trial %d: gonum found a cycle", trial)
		assertTopological(t, n, edges, order)
	}
}
