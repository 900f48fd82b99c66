// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on weighted graphs over dense vertex ids [0, n).
//
// The implementation uses a binary min-heap (container/heap) with the
// "lazy decrease-key" strategy: relaxations push duplicate entries and
// stale entries are skipped on extraction.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry: up to E pushes.
//   - Space: O(V + E) for distance/parent arrays and heap entries.
package dijkstra

import "container/heap"

// ShortestPaths computes, from the given source, the minimum distance to
// every vertex and the parent of every vertex in the shortest-path tree.
//
// Returns:
//
//   - dist:   dist[v] is the distance from source to v, or Unreachable.
//   - parent: parent[v] is v's predecessor in the tree, or -1 for the
//     source and for unreachable vertices.
//   - err:    ErrVertexRange if source is outside [0, n).
//
// Repeated calls are independent; the graph is read-only here.
func (g *Graph) ShortestPaths(source int) (dist []int64, parent []int, err error) {
	if source < 0 || source >= g.n {
		return nil, nil, ErrVertexRange
	}

	// 1. All distances start unreachable, all parents unset.
	dist = make([]int64, g.n)
	parent = make([]int, g.n)
	for v := range dist {
		dist[v] = Unreachable
		parent[v] = -1
	}
	dist[source] = 0

	// 2. Seed the heap with the source at distance 0.
	pq := &nodePQ{{id: source, dist: 0}}
	heap.Init(pq)

	// 3. Extract-min loop with lazy stale-entry skipping.
	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem)
		if item.dist > dist[item.id] {
			// A shorter entry for this vertex was already processed.
			continue
		}
		for _, e := range g.adj[item.id] {
			if next := item.dist + e.weight; next < dist[e.to] {
				dist[e.to] = next
				parent[e.to] = item.id
				heap.Push(pq, nodeItem{id: e.to, dist: next})
			}
		}
	}

	return dist, parent, nil
}

// nodeItem is one heap entry: a vertex and the distance it was pushed at.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of nodeItems ordered by distance.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
