// SPDX-License-Identifier: MIT
// File: bounded.go
// Role: Bounded dual traversal used to screen an edge swap for a detached
//       small component without paying for a full connectivity scan.
// Model:
//   - Two BFS frontiers, one per start node, advanced in lock-step.
//   - One step pops one node from each side (node budget).
//   - Stops as soon as a side is finished (queue exhausted) or after limit steps.
// Complexity:
//   - O(limit · Δ) time and space, Δ = maximum degree among popped nodes.
//     Independent of N, which is the point of the check.

package bfs

import (
	"fmt"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

// frontier is the transient state of one side of a bounded traversal.
type frontier struct {
	queue  []int
	head   int
	seen   map[int]struct{}
	popped int
}

func newFrontier(start, limit int) *frontier {
	f := &frontier{
		queue: make([]int, 1, limit+1),
		seen:  make(map[int]struct{}, limit+1),
	}
	f.queue[0] = start
	f.seen[start] = struct{}{}

	return f
}

// finished reports whether the reachable set has been exhausted.
func (f *frontier) finished() bool {
	return f.head == len(f.queue)
}

// step pops one node and discovers its unseen neighbors.
func (f *frontier) step(g *core.Graph) {
	u := f.queue[f.head]
	f.head++
	f.popped++
	for v := range g.Neighbors(u) {
		if _, ok := f.seen[v]; !ok {
			f.seen[v] = struct{}{}
			f.queue = append(f.queue, v)
		}
	}
}

// BoundedPair runs two lock-step breadth-first explorations from a and b and
// stops when either side has exhausted its reachable set or after limit steps.
//
// The caller decides what a finished side means; PairResult.Isolated(n)
// treats a side that finished below n nodes as a detached component. With
// limit ≥ n the check is exact: a side either reaches all n nodes or
// finishes inside a smaller component.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrStartOutOfRange if a or b is outside [0, N).
//   - ErrBadLimit if limit < 1.
func BoundedPair(g *core.Graph, a, b, limit int) (PairResult, error) {
	if g == nil {
		return PairResult{}, ErrGraphNil
	}
	n := g.Size()
	if a < 0 || a >= n || b < 0 || b >= n {
		return PairResult{}, fmt.Errorf("%w: (%d,%d) not in [0,%d)", ErrStartOutOfRange, a, b, n)
	}
	if limit < 1 {
		return PairResult{}, fmt.Errorf("%w: %d", ErrBadLimit, limit)
	}

	fa := newFrontier(a, limit)
	fb := newFrontier(b, limit)
	steps := 0
	for !fa.finished() && !fb.finished() && steps < limit {
		fa.step(g)
		fb.step(g)
		steps++
	}

	return PairResult{
		FinishedA: fa.finished(),
		FinishedB: fb.finished(),
		VisitedA:  fa.popped,
		VisitedB:  fb.popped,
		Steps:     steps,
	}, nil
}
