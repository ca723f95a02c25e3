// SPDX-License-Identifier: MIT
// Package: randomize
//
// swap.go - the pair-swap step (double-edge swap with connectivity screen).
//
// Model:
//   • Draw i, j uniformly, then m ∈ N(i), n ∈ N(j) uniformly.
//   • Proposal i–m, j–n → i–n, j–m. Degrees of all four endpoints are unchanged.
//   • Invalid draws (collisions, existing target edges) are redrawn and do not
//     count as tries. Degree-1 pairings are skipped without mutation. Other
//     proposals are applied, screened with bfs.BoundedPair, and reverted when
//     a small detached component is found.
//
// Slot discipline:
//   • Apply adds i–n, j–m before removing i–m, j–n; core's swap-remove then
//     puts each new neighbor into the slot of the old one. Revert does the
//     same in reverse, so a rejected proposal restores slot order exactly.
//
// Determinism:
//   • Draw order per proposal is fixed: Intn(N), Intn(N), Intn(deg i), Intn(deg j).

package randomize

import (
	"fmt"

	"github.com/anhncs/CommunityDetectionCodes/bfs"
	"github.com/anhncs/CommunityDetectionCodes/core"
)

const methodSwitchLinkPairEnds = "SwitchLinkPairEnds"

// swapper holds the resolved state of a run of pair-swap steps.
type swapper struct {
	g   *core.Graph
	rnd core.Generator
	cfg config
	n   int
}

// SwitchLinkPairEnds performs one accepted double-edge swap on g and returns
// the number of tries it took (≥ 1). A try is a proposal that survived the
// validity checks; rejected tries leave g exactly as it was.
//
// The traversal budget limit must lie in [1, g.Size()].
//
// Errors:
//   - ErrNilGraph, ErrNilGenerator.
//   - ErrLimitOutOfRange if limit ∉ [1, N].
//   - ErrTooFewEdges if g has fewer than two edges.
//   - core.ErrIsolatedNode if a degree-0 node is drawn.
//   - ErrSwapExhausted after the proposal cap (WithMaxProposals); g is unchanged.
//
// Complexity: expected O(tries · limit · Δ).
func SwitchLinkPairEnds(g *core.Graph, rnd core.Generator, limit int, opts ...Option) (int, error) {
	if err := validate(methodSwitchLinkPairEnds, g, rnd); err != nil {
		return 0, err
	}
	if err := checkLimit(methodSwitchLinkPairEnds, g, limit); err != nil {
		return 0, err
	}
	if g.NumEdges() < 2 {
		return 0, fmt.Errorf("%s: E=%d: %w", methodSwitchLinkPairEnds, g.NumEdges(), ErrTooFewEdges)
	}
	s := &swapper{g: g, rnd: rnd, cfg: newConfig(opts...), n: g.Size()}

	return s.swap(limit)
}

func validate(method string, g *core.Graph, rnd core.Generator) error {
	if g == nil {
		return fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if rnd == nil {
		return fmt.Errorf("%s: %w", method, ErrNilGenerator)
	}
	return nil
}

func checkLimit(method string, g *core.Graph, limit int) error {
	if limit < minLimit || limit > g.Size() {
		return fmt.Errorf("%s: limit=%d not in [1,%d]: %w", method, limit, g.Size(), ErrLimitOutOfRange)
	}
	return nil
}

// swap is the body of SwitchLinkPairEnds with validated inputs.
func (s *swapper) swap(limit int) (int, error) {
	g := s.g
	tries := 0
	for proposals := 0; proposals < s.cfg.maxProposals; {
		// 1) draw a valid proposal i–m, j–n
		var i, j, m, n int
		for {
			if proposals >= s.cfg.maxProposals {
				return tries, fmt.Errorf("%s: %d proposals: %w",
					methodSwitchLinkPairEnds, proposals, ErrSwapExhausted)
			}
			proposals++

			var err error
			i = s.rnd.Intn(s.n)
			j = s.rnd.Intn(s.n)
			if m, err = g.RandNeighbor(i, s.rnd); err != nil {
				return tries, fmt.Errorf("%s: %w", methodSwitchLinkPairEnds, err)
			}
			if n, err = g.RandNeighbor(j, s.rnd); err != nil {
				return tries, fmt.Errorf("%s: %w", methodSwitchLinkPairEnds, err)
			}
			if i == j || m == n || m == j || n == i || g.HasEdge(i, n) || g.HasEdge(j, m) {
				s.cfg.recorder.ObserveReject(RejectInvalid)
				continue
			}
			break
		}
		tries++

		// 2) two degree-1 endpoints joined together would split off at once
		if (g.Degree(i) == 1 && g.Degree(n) == 1) || (g.Degree(j) == 1 && g.Degree(m) == 1) {
			s.cfg.recorder.ObserveReject(RejectDegenerate)
			continue
		}

		// 3) apply and screen
		rewire(g, i, m, j, n)
		res, err := bfs.BoundedPair(g, i, j, limit)
		if err != nil {
			rewire(g, i, n, j, m)
			return tries, fmt.Errorf("%s: %w", methodSwitchLinkPairEnds, err)
		}
		if res.Isolated(s.n) {
			rewire(g, i, n, j, m)
			s.cfg.recorder.ObserveReject(RejectIsolation)
			continue
		}

		s.cfg.recorder.ObserveSwap(tries)
		return tries, nil
	}

	return tries, fmt.Errorf("%s: %d proposals: %w",
		methodSwitchLinkPairEnds, s.cfg.maxProposals, ErrSwapExhausted)
}

// rewire replaces i–m, j–n with i–n, j–m, carrying i–m's weight to i–n and
// j–n's weight to j–m. Calling rewire(g, i, n, j, m) undoes it.
func rewire(g *core.Graph, i, m, j, n int) {
	wim := g.EdgeValue(i, m)
	wjn := g.EdgeValue(j, n)
	g.SetEdge(i, n, wim)
	g.SetEdge(j, m, wjn)
	g.SetEdge(i, m, core.NoEdge)
	g.SetEdge(j, n, core.NoEdge)
}
