// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side first (n1 nodes), right side next (n2 nodes).
//   • Edges for every cross pair, left asc then right asc.

package builder

import (
	"fmt"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

const minPartition = 1

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartition || n2 < minPartition {
			return fmt.Errorf("%s: partitions (%d,%d) must be ≥ %d: %w",
				methodCompleteBipartite, n1, n2, minPartition, ErrTooFewVertices)
		}

		left := g.AddNodes(n1 + n2)
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := addEdge(g, cfg, methodCompleteBipartite, left+i, right+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
