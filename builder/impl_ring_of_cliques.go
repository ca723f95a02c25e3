// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_ring_of_cliques.go - implementation of RingOfCliques(k, m) constructor.
//
// Contract:
//   • k ≥ 2 cliques, m ≥ 3 nodes each (else ErrTooFewVertices).
//   • Clique c occupies indices off + c*m .. off + c*m + m-1.
//   • Edges: each clique in turn (as Complete), then the bridges
//     last(c)–first((c+1)%k) for c=0..k-1.
//
// The planted communities make it the standard fixture for checking that a
// randomizer destroys modular structure while keeping the degrees.

package builder

import (
	"fmt"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

const (
	minRingCliques    = 2
	minRingCliqueSize = 3
)

// RingOfCliques returns a Constructor that builds k m-cliques joined in a ring.
func RingOfCliques(k, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minRingCliques || m < minRingCliqueSize {
			return fmt.Errorf("%s: k=%d (min %d), m=%d (min %d): %w",
				methodRingOfCliques, k, minRingCliques, m, minRingCliqueSize, ErrTooFewVertices)
		}

		off := g.AddNodes(k * m)
		for c := 0; c < k; c++ {
			if err := clique(g, cfg, methodRingOfCliques, off+c*m, m); err != nil {
				return err
			}
		}
		for c := 0; c < k; c++ {
			last := off + c*m + m - 1
			first := off + ((c+1)%k)*m
			if err := addEdge(g, cfg, methodRingOfCliques, last, first); err != nil {
				return err
			}
		}

		return nil
	}
}
