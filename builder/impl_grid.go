// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   • Node (r, c) has index off + r*cols + c (row-major).
//   • For each cell in row-major order: right edge first, then bottom edge.
//
// Complexity:
//   • Time: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

const minGridDim = 1

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		off := g.AddNodes(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := off + r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
