// File: view.go
// Role: Read-only gonum view of a Graph.
// Determinism:
//   - Nodes() iterates 0..N-1; From(id) iterates in storage order.
// AI-HINT (file):
//   - The view reads the live graph; do not mutate g while a gonum algorithm runs.
//   - Use it with gonum.org/v1/gonum/graph/topo (ConnectedComponents, ...).

package core

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"
)

// gonumView adapts *Graph to gonum's graph.Undirected interface.
type gonumView struct {
	g *Graph
}

// Undirected returns g as a gonum graph.Undirected. Node IDs equal node
// indices; edges are simple.WeightedEdge values carrying the stored Weight.
// Complexity: O(1) to create.
func Undirected(g *Graph) graph.Undirected {
	return gonumView{g: g}
}

func (v gonumView) has(id int64) bool {
	return id >= 0 && id < int64(len(v.g.adj))
}

// Node returns the node with the given ID, or nil if it does not exist.
func (v gonumView) Node(id int64) graph.Node {
	if !v.has(id) {
		return nil
	}
	return simple.Node(id)
}

// Nodes returns all nodes in index order.
func (v gonumView) Nodes() graph.Nodes {
	n := len(v.g.adj)
	if n == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, n)
	for i := range nodes {
		nodes[i] = simple.Node(i)
	}

	return iterator.NewOrderedNodes(nodes)
}

// From returns the neighbors of id.
func (v gonumView) From(id int64) graph.Nodes {
	if !v.has(id) || len(v.g.adj[id].nbrs) == 0 {
		return graph.Empty
	}
	s := &v.g.adj[id]
	nodes := make([]graph.Node, len(s.nbrs))
	for k, u := range s.nbrs {
		nodes[k] = simple.Node(u)
	}

	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports whether {xid, yid} exists.
func (v gonumView) HasEdgeBetween(xid, yid int64) bool {
	return v.has(xid) && v.has(yid) && v.g.HasEdge(int(xid), int(yid))
}

// Edge returns the edge uid–vid, or nil if absent.
func (v gonumView) Edge(uid, vid int64) graph.Edge {
	if !v.has(uid) || !v.has(vid) {
		return nil
	}
	w := v.g.EdgeValue(int(uid), int(vid))
	if w == NoEdge {
		return nil
	}

	return simple.WeightedEdge{F: simple.Node(uid), T: simple.Node(vid), W: w}
}

// EdgeBetween is Edge for undirected graphs.
func (v gonumView) EdgeBetween(xid, yid int64) graph.Edge {
	return v.Edge(xid, yid)
}
