package bcc_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphbook/graphbook/bcc"
)

// build constructs a Builder over the given undirected edges and runs
// Build, returning the builder and the assigned edge ids in input order.
func build(t *testing.T, n int, edges [][2]int) (*bcc.Builder, []int) {
	t.Helper()
	b, err := bcc.New(n)
	require.NoError(t, err)
	ids := make([]int, 0, len(edges))
	for _, e := range edges {
		id, err := b.AddEdge(e[0], e[1])
		require.NoError(t, err)
		ids = append(ids, id)
	}
	b.Build()

	return b, ids
}

func sortedCopy(xs []int) []int {
	out := append([]int(nil), xs...)
	sort.Ints(out)

	return out
}

// canonical sorts edge ids inside each component and components by their
// smallest edge id.
func canonical(components [][]int) [][]int {
	out := make([][]int, 0, len(components))
	for _, comp := range components {
		out = append(out, sortedCopy(comp))
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

func TestBuild_TriangleWithTail(t *testing.T) {
	// Triangle 0-1-2 plus tail 2-3. Edge 2-3 is a bridge, vertex 2 is an
	// articulation point, and the components are {triangle}, {tail}.
	b, ids := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}})

	bridges, err := b.Bridges()
	require.NoError(t, err)
	require.Equal(t, []int{ids[3]}, bridges)

	cuts, err := b.CutVertices()
	require.NoError(t, err)
	require.Equal(t, []int{2}, cuts)

	components, err := b.Components()
	require.NoError(t, err)
	require.Equal(t, [][]int{{ids[0], ids[1], ids[2]}, {ids[3]}}, canonical(components))
}

func TestBuild_PathIsAllBridges(t *testing.T) {
	b, ids := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	bridges, err := b.Bridges()
	require.NoError(t, err)
	require.Equal(t, sortedCopy(ids), sortedCopy(bridges))

	cuts, err := b.CutVertices()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, sortedCopy(cuts))

	// Every bridge is its own biconnected component.
	components, err := b.Components()
	require.NoError(t, err)
	require.Len(t, components, 3)
}

func TestBuild_ParallelEdgesAreNotBridges(t *testing.T) {
	// Two parallel edges 0-1 form a cycle of length two.
	b, ids := build(t, 2, [][2]int{{0, 1}, {0, 1}})

	bridges, err := b.Bridges()
	require.NoError(t, err)
	require.Empty(t, bridges)

	components, err := b.Components()
	require.NoError(t, err)
	require.Equal(t, [][]int{{ids[0], ids[1]}}, canonical(components))
}

func TestBuild_TwoBlocksSharingACutVertex(t *testing.T) {
	// Two triangles glued at vertex 2: 0-1-2 and 2-3-4.
	b, _ := build(t, 5, [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{2, 3}, {3, 4}, {4, 2},
	})

	cuts, err := b.CutVertices()
	require.NoError(t, err)
	require.Equal(t, []int{2}, cuts)

	components, err := b.Components()
	require.NoError(t, err)
	require.Len(t, components, 2)
	for _, comp := range components {
		require.Len(t, comp, 3)
	}

	bridges, err := b.Bridges()
	require.NoError(t, err)
	require.Empty(t, bridges)
}

func TestBuild_DisconnectedGraph(t *testing.T) {
	// Two separate edges; each is a bridge, no articulation points.
	b, _ := build(t, 4, [][2]int{{0, 1}, {2, 3}})

	bridges, err := b.Bridges()
	require.NoError(t, err)
	require.Len(t, bridges, 2)

	cuts, err := b.CutVertices()
	require.NoError(t, err)
	require.Empty(t, cuts)
}

func TestAccessorsBeforeBuild(t *testing.T) {
	b, err := bcc.New(2)
	require.NoError(t, err)

	_, err = b.Components()
	require.ErrorIs(t, err, bcc.ErrNotBuilt)
	_, err = b.Bridges()
	require.ErrorIs(t, err, bcc.ErrNotBuilt)
	_, err = b.CutVertices()
	require.ErrorIs(t, err, bcc.ErrNotBuilt)
}

func TestContracts(t *testing.T) {
	_, err := bcc.New(0)
	require.ErrorIs(t, err, bcc.ErrNonPositiveOrder)

	b, err := bcc.New(2)
	require.NoError(t, err)
	_, err = b.AddEdge(0, 5)
	require.ErrorIs(t, err, bcc.ErrVertexRange)
}
