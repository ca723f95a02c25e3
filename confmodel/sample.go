// SPDX-License-Identifier: MIT
// Package: confmodel
//
// sample.go - the configuration-model swap chain.
//
// Model (one attempt):
//   1) Draw positions p, q uniformly from the edge cache, independently.
//   2) Skip if p == q or the edges a–b, c–d share a node.
//   3) Coin flip: with probability 1/2 orient the first edge as b–a.
//   4) Skip if a–d or b–c already exists.
//   5) Replace a–b, c–d with a–d, b–c. A second coin decides which old weight
//      goes to which new edge.
//
// Every non-trivial move has probability 1/E² in both directions, so the chain
// is symmetric and converges to the uniform distribution over simple graphs
// with the given degree sequence. Connectivity is not considered.
//
// Determinism:
//   • Draw order per attempt: Intn(E), Intn(E), then Intn(2) once the pair
//     passed step 2, then Intn(2) once it passed step 4.

package confmodel

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

const (
	methodSampleSimple = "SampleSimple"
	// ctxCheckEvery is how many attempts run between context checks.
	ctxCheckEvery = 1 << 12
)

// Sampler runs the swap chain on one graph and keeps the edge cache between
// calls, so a long chain can be run in pieces.
type Sampler struct {
	g     *core.Graph
	edges *EdgeList
	cfg   config
}

// NewSampler captures the edge cache of g. g must not be mutated by anyone
// else while the Sampler is in use.
func NewSampler(g *core.Graph, opts ...Option) (*Sampler, error) {
	if g == nil {
		return nil, fmt.Errorf("NewSampler: %w", ErrNilGraph)
	}

	return &Sampler{g: g, edges: NewEdgeList(g), cfg: newConfig(opts...)}, nil
}

// Run performs attempts swap attempts and returns the number that succeeded.
// A graph with fewer than two edges yields 0. The only possible error is the
// context error from WithContext, returned together with the count so far.
func (s *Sampler) Run(rnd core.Generator, attempts int) (int, error) {
	if rnd == nil {
		return 0, fmt.Errorf("%s: %w", methodSampleSimple, ErrNilGenerator)
	}
	if attempts < 0 {
		return 0, fmt.Errorf("%s: attempts=%d: %w", methodSampleSimple, attempts, ErrNegativeAttempts)
	}
	size := s.edges.Len()
	if size < 2 {
		return 0, nil
	}

	ok := 0
	for k := 0; k < attempts; k++ {
		if k%ctxCheckEvery == 0 {
			if err := s.cfg.ctx.Err(); err != nil {
				return ok, fmt.Errorf("%s: after %d attempts: %w", methodSampleSimple, k, err)
			}
		}
		if s.attempt(rnd, size) {
			ok++
		}
	}
	s.cfg.logger.WithFields(logrus.Fields{
		"attempts":  attempts,
		"swaps":     ok,
		"untouched": UntouchedEdges(size, ok),
	}).Debug("confmodel: chain finished")

	return ok, nil
}

// attempt makes one move of the chain and reports whether it changed g.
func (s *Sampler) attempt(rnd core.Generator, size int) bool {
	p := rnd.Intn(size)
	q := rnd.Intn(size)
	if p == q {
		return false
	}
	a, b := s.edges.At(p)
	c, d := s.edges.At(q)
	if a == c || a == d || b == c || b == d {
		return false
	}
	if rnd.Intn(2) == 0 {
		a, b = b, a
	}
	g := s.g
	if g.HasEdge(a, d) || g.HasEdge(b, c) {
		return false
	}

	s.edges.set(p, a, d)
	s.edges.set(q, c, b)

	wab, wcd := g.EdgeValue(a, b), g.EdgeValue(c, d)
	if rnd.Intn(2) == 0 {
		g.SetEdge(a, d, wab)
		g.SetEdge(b, c, wcd)
	} else {
		g.SetEdge(a, d, wcd)
		g.SetEdge(b, c, wab)
	}
	g.SetEdge(a, b, core.NoEdge)
	g.SetEdge(c, d, core.NoEdge)

	return true
}

// SampleSimple runs attempts moves of the configuration-model swap chain on g
// in place and returns the number of successful swaps. Degrees and the edge
// count are preserved and g stays simple; connectivity is not.
//
// As a rule of thumb, run enough attempts that every edge has moved a few
// times; UntouchedEdges estimates how many have not.
//
// Errors:
//   - ErrNilGraph, ErrNilGenerator, ErrNegativeAttempts.
//   - ctx.Err() from WithContext (with the partial count).
//
// Complexity: O(E log E + attempts).
func SampleSimple(g *core.Graph, rnd core.Generator, attempts int, opts ...Option) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("%s: %w", methodSampleSimple, ErrNilGraph)
	}
	if rnd == nil {
		return 0, fmt.Errorf("%s: %w", methodSampleSimple, ErrNilGenerator)
	}
	s, err := NewSampler(g, opts...)
	if err != nil {
		return 0, err
	}

	return s.Run(rnd, attempts)
}

// UntouchedEdges is the expected number of edges not yet moved after swaps
// successful swaps among links edges: L·(1 - 2/L)^swaps.
func UntouchedEdges(links, swaps int) float64 {
	if links <= 0 {
		return 0
	}
	l := float64(links)

	return l * math.Pow(1-2/l, float64(swaps))
}
