// Package builder provides deterministic graph fixtures for tests, examples
// and the netrand CLI, built from functional-options-style constructors.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): start from an empty core.Graph and apply
//     constructors in order. Each constructor appends its own nodes, so
//     several constructors yield a disjoint union; Connect(a, b) joins pieces.
//     – MustBuild: BuildGraph that panics, for fixtures known to be valid.
//   - Topologies (Constructor factories):
//     – Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid.
//     – RingOfCliques(k, m): k planted communities joined in a ring.
//     – RandomSparse(n, p): Erdős–Rényi G(n, p).
//     – RandomRegular(n, d): uniform-ish d-regular graph by stub matching.
//   - Configuration (BuilderOption):
//     – WithSeed / WithRand: RNG for stochastic constructors.
//     – WithWeightFn, WithConstantWeight, WithUniformWeight: edge weights.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs, including
//     neighbor slot order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors validate before mutating and return wrapped sentinels
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed).
package builder
