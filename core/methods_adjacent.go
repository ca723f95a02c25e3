// File: methods_adjacent.go
// Role: Neighborhood APIs (Degree, Neighbors, NeighborAt, RandNeighbor) and
//       the degree sequence.
// Determinism:
//   - Neighbors(a) yields slots in storage order, which is a pure function of
//     the mutation history. Two graphs built by the same calls iterate alike.
//   - RandNeighbor consumes exactly one Intn draw.

package core

import (
	"fmt"
	"iter"
)

// Degree returns the number of neighbors of a. Complexity: O(1).
func (g *Graph) Degree(a int) int {
	return len(g.adj[a].nbrs)
}

// Neighbors returns a lazy, restartable view of a's neighbors and the weights
// of the connecting edges.
//
// The sequence reads the live neighbor set: mutating a's neighborhood while
// ranging over it is undefined. Collect first if you need to mutate.
// Complexity: O(1) to create, O(deg(a)) to drain.
func (g *Graph) Neighbors(a int) iter.Seq2[int, Weight] {
	return func(yield func(int, Weight) bool) {
		s := &g.adj[a]
		for k := 0; k < len(s.nbrs); k++ {
			if !yield(s.nbrs[k], s.wts[k]) {
				return
			}
		}
	}
}

// NeighborAt returns the k-th neighbor of a in storage order, 0 ≤ k < Degree(a).
// Complexity: O(1).
func (g *Graph) NeighborAt(a, k int) int {
	return g.adj[a].nbrs[k]
}

// RandNeighbor returns a neighbor of a chosen uniformly with rnd.
//
// Errors:
//   - ErrNodeOutOfRange if a is outside [0, Size()).
//   - ErrIsolatedNode if a has degree 0.
//
// Complexity: O(1).
func (g *Graph) RandNeighbor(a int, rnd Generator) (int, error) {
	if a < 0 || a >= len(g.adj) {
		return 0, fmt.Errorf("core: RandNeighbor(%d) with N=%d: %w", a, len(g.adj), ErrNodeOutOfRange)
	}
	d := len(g.adj[a].nbrs)
	if d == 0 {
		return 0, fmt.Errorf("core: RandNeighbor(%d): %w", a, ErrIsolatedNode)
	}

	return g.adj[a].nbrs[rnd.Intn(d)], nil
}

// DegreeSequence returns Degree(i) for every node, indexed by node.
// Complexity: O(N).
func (g *Graph) DegreeSequence() []int {
	out := make([]int, len(g.adj))
	for i := range g.adj {
		out[i] = len(g.adj[i].nbrs)
	}

	return out
}

// IsolatedNodes returns the nodes of degree 0 in ascending order.
func (g *Graph) IsolatedNodes() []int {
	var out []int
	for i := range g.adj {
		if len(g.adj[i].nbrs) == 0 {
			out = append(out, i)
		}
	}

	return out
}
