// SPDX-License-Identifier: MIT
// Package: confmodel
//
// edgelist.go - positional edge cache for uniform edge selection.
//
// The cache is filled once from the graph in canonical (U < V) order. A swap
// overwrites the two positions it consumed with the two edges it created,
// so the cache never grows or shrinks and its length stays E. Written entries
// keep the orientation the swap produced; they are not re-canonicalized.

package confmodel

import (
	"github.com/anhncs/CommunityDetectionCodes/core"
)

// EdgeList is a fixed-length list of the graph's edges, addressable by position.
type EdgeList struct {
	pairs [][2]int
}

// NewEdgeList captures the edges of g in canonical order.
// Complexity: O(E log E).
func NewEdgeList(g *core.Graph) *EdgeList {
	edges := g.Edges()
	l := &EdgeList{pairs: make([][2]int, len(edges))}
	for k, e := range edges {
		l.pairs[k] = [2]int{e.U, e.V}
	}

	return l
}

// Len returns the number of cached edges.
func (l *EdgeList) Len() int { return len(l.pairs) }

// At returns the endpoints stored at position k.
func (l *EdgeList) At(k int) (int, int) {
	p := l.pairs[k]
	return p[0], p[1]
}

func (l *EdgeList) set(k, a, b int) { l.pairs[k] = [2]int{a, b} }
