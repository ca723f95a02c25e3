// SPDX-License-Identifier: MIT
// Package core defines the integer-indexed, undirected, simple Graph store
// used by every randomization primitive in this module.
//
// This file declares Weight, Edge, Generator, Graph, sentinel errors and the
// NewGraph constructor.
//
// Errors:
//
//	ErrNodeOutOfRange      - node index outside [0, Size()).
//	ErrIsolatedNode        - a neighbor was requested from a degree-0 node.
//	ErrBadWeight           - NoEdge used as the weight of an edge being added.
//	ErrLoopNotAllowed      - self-loop passed to a validated mutator.
//	ErrMultiEdgeNotAllowed - second edge between the same pair.
//	ErrSizeMismatch        - CopyFrom between graphs of different order.
package core

import (
	"errors"
	"math/rand"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeOutOfRange indicates a node index outside [0, Size()).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrIsolatedNode indicates a neighbor was requested from a node of degree 0.
	ErrIsolatedNode = errors.New("core: node has no neighbors")

	// ErrBadWeight indicates the NoEdge sentinel was supplied as an edge weight.
	ErrBadWeight = errors.New("core: weight equals the no-edge sentinel")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrSizeMismatch indicates two graphs of different order were combined.
	ErrSizeMismatch = errors.New("core: graph size mismatch")
)

// Weight is the opaque value stored on an edge. Randomizers never interpret
// it; they only carry it from removed edges to added ones.
type Weight = float64

const (
	// NoEdge is the sentinel returned by EdgeValue for absent edges.
	// Passing it to SetEdge removes the edge.
	NoEdge Weight = 0

	// DefaultWeight is the value stored for edges of unweighted inputs.
	DefaultWeight Weight = 1
)

// Edge is a canonical (U < V) undirected edge together with its weight.
type Edge struct {
	U, V   int
	Weight Weight
}

// Generator is the single source of randomness threaded through every
// randomization call. *rand.Rand satisfies it.
//
// Intn returns a uniform integer in [0, n); Float64 a uniform real in [0, 1).
type Generator interface {
	Intn(n int) int
	Float64() float64
}

// NewGenerator returns a deterministic Generator seeded with seed.
func NewGenerator(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// neighborSet is an indexed set of the neighbors of one node.
//
// nbrs and wts are parallel dense slices; pos maps a neighbor to its slot.
// Removal swaps the last slot into the hole, so every operation is O(1) and
// iteration order depends only on the sequence of mutations.
type neighborSet struct {
	nbrs []int
	wts  []Weight
	pos  map[int]int
}

// Graph is an undirected simple graph over the nodes 0..Size()-1.
//
// Nodes are only ever appended (AddNodes), never removed, so indices stay
// stable. Edges carry a non-zero Weight.
// Graph is not safe for concurrent mutation; clone it per goroutine.
type Graph struct {
	adj   []neighborSet
	edges int // number of undirected edges
}

// NewGraph creates an edgeless Graph with n nodes.
// Panics if n < 0 (programmer error).
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		panic("core: NewGraph(n<0)")
	}
	g := &Graph{adj: make([]neighborSet, n)}
	for i := range g.adj {
		g.adj[i].pos = make(map[int]int)
	}

	return g
}
