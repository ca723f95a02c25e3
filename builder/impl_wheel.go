// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 3 rim nodes (else ErrTooFewVertices); n+1 nodes in total.
//   • The first appended node is the hub, rim nodes follow.
//   • Edges: rim cycle first (as Cycle), then spokes hub–rim in rim order.
//
// Complexity:
//   • Time: O(n) nodes + O(2n) edges.

package builder

import (
	"fmt"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

const minWheelRim = 3

// Wheel returns a Constructor that builds the wheel W_n: a hub joined to
// every node of an n-cycle.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelRim {
			return fmt.Errorf("%s: rim=%d < min=%d: %w", methodWheel, n, minWheelRim, ErrTooFewVertices)
		}

		hub := g.AddNodes(n + 1)
		rim := hub + 1
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodWheel, rim+i, rim+(i+1)%n); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodWheel, hub, rim+i); err != nil {
				return err
			}
		}

		return nil
	}
}
