// File: methods_clone.go
// Role: Snapshots of the edge relation: Clone, CopyFrom, Equal.
// Determinism:
//   - Clone and CopyFrom reproduce slot order exactly, so a restored graph
//     consumes random draws identically to the graph it was copied from.
// AI-HINT (file):
//   - Randomize takes one Clone per round and restores it with CopyFrom.

package core

import "fmt"

// Clone returns a deep copy of g: same order, edges, weights and slot order.
// Complexity: O(N + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{adj: make([]neighborSet, len(g.adj)), edges: g.edges}
	for i := range g.adj {
		c.adj[i] = g.adj[i].clone()
	}

	return c
}

// CopyFrom overwrites g's edge relation with src's, reusing g's storage.
//
// Errors:
//   - ErrSizeMismatch if src.Size() != g.Size().
//
// Complexity: O(N + E).
func (g *Graph) CopyFrom(src *Graph) error {
	if len(src.adj) != len(g.adj) {
		return fmt.Errorf("core: CopyFrom N=%d into N=%d: %w", len(src.adj), len(g.adj), ErrSizeMismatch)
	}
	for i := range src.adj {
		dst := &g.adj[i]
		s := &src.adj[i]
		dst.nbrs = append(dst.nbrs[:0], s.nbrs...)
		dst.wts = append(dst.wts[:0], s.wts...)
		clear(dst.pos)
		for v, k := range s.pos {
			dst.pos[v] = k
		}
	}
	g.edges = src.edges

	return nil
}

// Equal reports whether g and other have the same order and the same edges
// with the same weights. Slot order is ignored.
// Complexity: O(N + E).
func (g *Graph) Equal(other *Graph) bool {
	if other == nil || len(g.adj) != len(other.adj) || g.edges != other.edges {
		return false
	}
	for i := range g.adj {
		s := &g.adj[i]
		if len(s.nbrs) != len(other.adj[i].nbrs) {
			return false
		}
		for k, v := range s.nbrs {
			if other.EdgeValue(i, v) != s.wts[k] {
				return false
			}
		}
	}

	return true
}

func (s *neighborSet) clone() neighborSet {
	c := neighborSet{
		nbrs: append([]int(nil), s.nbrs...),
		wts:  append([]Weight(nil), s.wts...),
		pos:  make(map[int]int, len(s.pos)),
	}
	for v, k := range s.pos {
		c.pos[v] = k
	}

	return c
}
