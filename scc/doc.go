// Package scc finds strongly connected components of a directed graph
// over dense vertex ids [0, n) using Tarjan's algorithm, and derives
// 2-SAT assignments from the component structure.
//
// Two vertices are in the same component iff each can reach the other.
// A single depth-first traversal maintains, per vertex, a visit index and
// a lowlink (the smallest index reachable through the DFS subtree plus at
// most one back edge); a vertex whose lowlink equals its own index is the
// root of a component and pops it off the traversal stack.
//
// Components are emitted in reverse topological order of the condensation
// graph: a component appears in Components() before every component it can
// reach. This ordering is what makes the 2-SAT assignment rule a single
// comparison, and it is part of the package contract.
//
// TwoSAT builds on the component structure: given a table pairing every
// literal with its negation, the formula is satisfiable iff no literal
// shares a component with its negation, and a satisfying assignment sets
// each literal true iff its component is emitted before its negation's.
//
// Complexity:
//
//   - Time:   O(V + E) (single DFS; the 2-SAT pass is O(V))
//   - Memory: O(V)     (index/lowlink arrays and the component stack)
//
// # API
//
//	t, _ := scc.New(5)
//	_ = t.AddEdge(0, 1)
//	_ = t.AddEdge(1, 0)
//	t.Build()
//	comps, _ := t.Components()
//	which, _ := t.ComponentOf()
//
// # Contract
//
// Build must be called before Components, ComponentOf or TwoSAT
// (ErrNotBuilt otherwise). Build may be called again after further
// AddEdge calls; it recomputes everything from scratch.
package scc
