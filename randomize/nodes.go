// SPDX-License-Identifier: MIT
// Package: randomize
//
// nodes.go - label exchange between two random nodes.

package randomize

import (
	"fmt"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

const methodSwapNodeLabels = "SwapNodeLabels"

// SwapNodeLabels picks two distinct nodes i and j uniformly and exchanges
// their neighborhoods, as if the two labels were swapped. An edge i–j, if
// present, is kept with its weight. The result is isomorphic to the input,
// so it only shuffles which identifier sits where; useful against ordering
// artifacts in downstream tools.
//
// Errors:
//   - ErrNilGraph, ErrNilGenerator.
//   - ErrTooFewNodes if g has fewer than two nodes.
func SwapNodeLabels(g *core.Graph, rnd core.Generator, opts ...Option) (int, int, error) {
	if err := validate(methodSwapNodeLabels, g, rnd); err != nil {
		return 0, 0, err
	}
	n := g.Size()
	if n < 2 {
		return 0, 0, fmt.Errorf("%s: N=%d: %w", methodSwapNodeLabels, n, ErrTooFewNodes)
	}

	i := rnd.Intn(n)
	j := rnd.Intn(n - 1)
	if j >= i {
		j++
	}
	ExchangeNodes(g, i, j)

	cfg := newConfig(opts...)
	cfg.logger.WithField("i", i).WithField("j", j).Debug("swapped node labels")

	return i, j, nil
}

// ExchangeNodes swaps the neighborhoods of i and j in place. Out-of-range or
// equal nodes leave g unchanged.
func ExchangeNodes(g *core.Graph, i, j int) {
	n := g.Size()
	if i == j || i < 0 || j < 0 || i >= n || j >= n {
		return
	}

	var ei, ej []core.Edge
	for v, w := range g.Neighbors(i) {
		if v != j {
			ei = append(ei, core.Edge{U: i, V: v, Weight: w})
		}
	}
	for v, w := range g.Neighbors(j) {
		if v != i {
			ej = append(ej, core.Edge{U: j, V: v, Weight: w})
		}
	}
	for _, e := range ei {
		g.SetEdge(e.U, e.V, core.NoEdge)
	}
	for _, e := range ej {
		g.SetEdge(e.U, e.V, core.NoEdge)
	}
	for _, e := range ei {
		g.SetEdge(j, e.V, e.Weight)
	}
	for _, e := range ej {
		g.SetEdge(i, e.V, e.Weight)
	}
}
