// File: methods_edges.go
// Role: Edge lookup and mutation: EdgeValue/HasEdge/SetEdge/AddEdge, edge
//       catalog snapshots (Edges) and counters.
// Determinism:
//   - Edges() returns canonical edges (U < V) sorted by (U, V).
//   - Slot order inside a neighbor set depends only on the mutation sequence.
// Complexity:
//   - EdgeValue/HasEdge/SetEdge are O(1) amortized (map lookup + swap-remove).

package core

import (
	"fmt"
	"sort"
)

// Size returns the number of nodes N. Complexity: O(1).
func (g *Graph) Size() int {
	return len(g.adj)
}

// NumEdges returns the number of undirected edges. Complexity: O(1).
func (g *Graph) NumEdges() int {
	return g.edges
}

// EdgeValue returns the weight stored on {a, b}, or NoEdge if absent.
//
// Out-of-range indices are reported as NoEdge; validation is the job of the
// callers that pick indices.
// Complexity: O(1).
func (g *Graph) EdgeValue(a, b int) Weight {
	if a < 0 || a >= len(g.adj) {
		return NoEdge
	}
	s := &g.adj[a]
	k, ok := s.pos[b]
	if !ok {
		return NoEdge
	}

	return s.wts[k]
}

// HasEdge reports whether {a, b} exists. Complexity: O(1).
func (g *Graph) HasEdge(a, b int) bool {
	return g.EdgeValue(a, b) != NoEdge
}

// SetEdge creates, updates or removes the undirected edge {a, b}.
//
// Behavior:
//   - w == NoEdge removes the edge (no-op when absent).
//   - otherwise the edge is created or its weight replaced.
//
// SetEdge does not reject self-loops: callers guarantee a != b. Both indices
// must be in range.
// Complexity: O(1) amortized.
func (g *Graph) SetEdge(a, b int, w Weight) {
	if w == NoEdge {
		if g.adj[a].remove(b) {
			g.adj[b].remove(a)
			g.edges--
		}
		return
	}
	if g.adj[a].put(b, w) {
		g.edges++
	}
	g.adj[b].put(a, w)
}

// AddEdge is the validated counterpart of SetEdge used by loaders and builders.
//
// Errors:
//   - ErrNodeOutOfRange if a or b is outside [0, Size()).
//   - ErrLoopNotAllowed if a == b.
//   - ErrBadWeight if w == NoEdge.
//   - ErrMultiEdgeNotAllowed if {a, b} already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b int, w Weight) error {
	n := len(g.adj)
	if a < 0 || a >= n || b < 0 || b >= n {
		return fmt.Errorf("core: AddEdge(%d,%d) with N=%d: %w", a, b, n, ErrNodeOutOfRange)
	}
	if a == b {
		return fmt.Errorf("core: AddEdge(%d,%d): %w", a, b, ErrLoopNotAllowed)
	}
	if w == NoEdge {
		return fmt.Errorf("core: AddEdge(%d,%d): %w", a, b, ErrBadWeight)
	}
	if g.HasEdge(a, b) {
		return fmt.Errorf("core: AddEdge(%d,%d): %w", a, b, ErrMultiEdgeNotAllowed)
	}
	g.SetEdge(a, b, w)

	return nil
}

// Edges returns every edge once in canonical form (U < V), sorted by (U, V).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u := range g.adj {
		s := &g.adj[u]
		for k, v := range s.nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v, Weight: s.wts[k]})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// put stores w for neighbor v and reports whether v was newly inserted.
func (s *neighborSet) put(v int, w Weight) bool {
	if k, ok := s.pos[v]; ok {
		s.wts[k] = w
		return false
	}
	s.pos[v] = len(s.nbrs)
	s.nbrs = append(s.nbrs, v)
	s.wts = append(s.wts, w)

	return true
}

// remove deletes neighbor v by moving the last slot into its place.
// Reports whether v was present.
func (s *neighborSet) remove(v int) bool {
	k, ok := s.pos[v]
	if !ok {
		return false
	}
	last := len(s.nbrs) - 1
	if k != last {
		moved := s.nbrs[last]
		s.nbrs[k] = moved
		s.wts[k] = s.wts[last]
		s.pos[moved] = k
	}
	s.nbrs = s.nbrs[:last]
	s.wts = s.wts[:last]
	delete(s.pos, v)

	return true
}
