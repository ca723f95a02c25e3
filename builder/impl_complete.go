// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Edges for every unordered pair {i<j}, i asc then j asc.
//
// Complexity:
//   • Time: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

const minCompleteNodes = 1

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		off := g.AddNodes(n)
		return clique(g, cfg, methodComplete, off, n)
	}
}

// clique connects every pair among the n nodes starting at off.
func clique(g *core.Graph, cfg builderConfig, method string, off, n int) error {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := addEdge(g, cfg, method, off+i, off+j); err != nil {
				return err
			}
		}
	}

	return nil
}
