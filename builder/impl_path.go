// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Appends n nodes; edges i–(i+1) for i=0..n-2.

package builder

import (
	"fmt"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

const minPathNodes = 2

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		off := g.AddNodes(n)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, off+i, off+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
