// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 total nodes (else ErrTooFewVertices).
//   • The first appended node is the center; leaves follow in index order.
//
// A star admits no degree-preserving swap at all: every pair of edges shares
// the center. Randomizers must report that instead of spinning.

package builder

import (
	"fmt"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

const minStarNodes = 2

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		center := g.AddNodes(n)
		for leaf := center + 1; leaf < center+n; leaf++ {
			if err := addEdge(g, cfg, methodStar, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
