// SPDX-License-Identifier: MIT
// Package: edgelist
//
// network.go - a graph together with the external names of its nodes.

package edgelist

import (
	"strconv"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

// Network pairs a core.Graph with node names. Names[i] is the token node i
// was read from; Index is the inverse map.
type Network struct {
	Graph *core.Graph
	Names []string
	Index map[string]int
	// Duplicates counts edge lines skipped because the pair was already seen.
	Duplicates int
}

// FromGraph wraps g with decimal names "0".."N-1".
func FromGraph(g *core.Graph) *Network {
	n := g.Size()
	net := &Network{Graph: g, Names: make([]string, n), Index: make(map[string]int, n)}
	for i := 0; i < n; i++ {
		name := strconv.Itoa(i)
		net.Names[i] = name
		net.Index[name] = i
	}

	return net
}

// node returns the index of name, appending a new node on first sight.
func (net *Network) node(name string) int {
	if id, ok := net.Index[name]; ok {
		return id
	}
	id := net.Graph.AddNodes(1)
	net.Names = append(net.Names, name)
	net.Index[name] = id

	return id
}

// Name returns the external name of node i, or its decimal index when the
// network has no name for it.
func (net *Network) Name(i int) string {
	if i >= 0 && i < len(net.Names) {
		return net.Names[i]
	}

	return strconv.Itoa(i)
}
