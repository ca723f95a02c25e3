// Package core provides the integer-indexed, undirected, simple Graph store
// that the randomizers read and rewire.
//
// The Graph G = (V,E) has a fixed node set V = {0, …, N-1} and supports:
//
//   - O(1) edge lookup:        EdgeValue(a,b), HasEdge(a,b)
//   - O(1) edge toggling:      SetEdge(a,b,w)  (w == NoEdge removes)
//   - O(1) uniform neighbor:   RandNeighbor(a, rnd)
//   - Lazy neighbor views:     Neighbors(a) iter.Seq2[int, Weight]
//   - Snapshots:               Clone(), CopyFrom(src), Equal(other)
//   - gonum interop:           Undirected(g) graph.Undirected
//
// Storage
//
//	Each node owns an indexed neighbor set: a dense slice of neighbors, a
//	parallel slice of weights and a position map. Removal swaps the last slot
//	into the hole. This keeps every mutation O(1) and, unlike ranging over a Go
//	map, gives an iteration order that is a pure function of the mutation
//	history, so a fixed seed reproduces a randomization bit for bit.
//
// Weights
//
//	Weight is float64. NoEdge (0) is the "absent" sentinel, so stored weights
//	are never 0; unweighted inputs use DefaultWeight (1).
//
// Preconditions
//
//	SetEdge is the raw mutator used in hot loops: it neither rejects
//	self-loops nor checks bounds. AddEdge is the validated form for loaders
//	and builders and returns ErrLoopNotAllowed, ErrNodeOutOfRange,
//	ErrBadWeight or ErrMultiEdgeNotAllowed.
//
// Concurrency
//
//	A Graph is owned by one goroutine at a time. Parallel callers (see package
//	ensemble) work on clones.
//
// Randomness
//
//	Generator (Intn, Float64) is the only randomness interface. *rand.Rand
//	satisfies it; NewGenerator(seed) builds one.
package core
