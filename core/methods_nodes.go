// SPDX-License-Identifier: MIT
// Package: core
//
// methods_nodes.go - growing the node set.

package core

// AddNodes appends k isolated nodes and returns the index of the first one.
// Existing indices, edges and neighbor slot order are unaffected.
// Panics if k < 0.
// Complexity: O(k).
func (g *Graph) AddNodes(k int) int {
	if k < 0 {
		panic("core: AddNodes(k<0)")
	}
	first := len(g.adj)
	for i := 0; i < k; i++ {
		g.adj = append(g.adj, neighborSet{pos: make(map[int]int)})
	}

	return first
}
