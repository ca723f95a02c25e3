// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Appends n nodes; edges in stable order i–(i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) nodes + O(n) edges.

package builder

import (
	"fmt"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

const minCycleNodes = 3

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		off := g.AddNodes(n)
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, off+i, off+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
