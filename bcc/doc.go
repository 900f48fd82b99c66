// Package bcc finds biconnected components, bridges, and articulation
// points of an undirected graph over dense vertex ids [0, n).
//
// Edges are identified by the index AddEdge assigned them (0, 1, 2, ...),
// and components group edge ids: two edges share a component iff they lie
// on a common simple cycle. Bridges are the edges whose removal
// disconnects their endpoints; articulation points are the vertices whose
// removal increases the number of connected components.
//
// All three answers fall out of one depth-first traversal tracking, per
// vertex, a visit index and a lowlink. Tree edges are pushed on an edge
// stack; when a child subtree cannot reach above its parent, the stack is
// popped down to the entering edge and the popped edges form one
// component. A tree edge whose child's lowlink exceeds the parent's index
// is a bridge (a one-edge component); a non-root vertex with such a child
// boundary is an articulation point, and the root is one iff it has two
// or more DFS children.
//
// Parallel edges are handled by skipping only the specific parent edge id
// during the traversal, so a duplicated edge correctly forms a cycle and
// its copies are never reported as bridges.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (edge stack and recursion)
//
// # API
//
//	b, _ := bcc.New(4)
//	_, _ = b.AddEdge(0, 1)
//	_, _ = b.AddEdge(1, 2)
//	b.Build()
//	comps, _ := b.Components()
//	bridges, _ := b.Bridges()
//	cuts, _ := b.CutVertices()
//
// # Contract
//
// Build must be called before the accessors (ErrNotBuilt otherwise) and
// recomputes from scratch, so AddEdge-then-Build cycles are fine.
// Self-loops are accepted and ignored by the analysis: a self-loop is
// neither a bridge nor part of any biconnected component.
package bcc
