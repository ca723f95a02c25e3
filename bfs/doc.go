// Package bfs provides breadth-first traversals over a core.Graph: a full
// BFS with distances and parents, exact connectivity checks, and the bounded
// dual traversal used to screen edge swaps.
//
// What
//
//   - BFS(g, start, opts...) explores nodes in non-decreasing distance from
//     start and returns a BFSResult (Order, Depth, Parent).
//   - Connected(g) and Components(g) give exact global connectivity in O(N+E).
//   - BoundedPair(g, a, b, limit) advances two BFS frontiers in lock-step,
//     popping one node per side per step, and stops as soon as one side has
//     exhausted its reachable set or after limit steps.
//
// Why BoundedPair
//
//	Swapping the endpoints of two edges either leaves a graph connected or,
//	almost always, cuts off a small piece next to one of the swapped
//	endpoints. A side that finishes within the budget has found such a piece.
//	The cost is O(limit·Δ) regardless of N, so it can run after every swap,
//	while the exact O(N+E) check runs once per round.
//
//	The screen is one-sided: a detached piece larger than the budget goes
//	unnoticed. Callers must keep a periodic exact check. With limit ≥ N the
//	screen is exact (PairResult.Isolated).
//
// Determinism
//
//	Neighbors are visited in core storage order, which depends only on the
//	mutation history, so visit sequences are reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - BFS, Connected, Components: O(V + E) time, O(V) memory.
//   - BoundedPair: O(limit·Δ) time and memory.
//
// Options (BFS only)
//
//   - WithContext(ctx):   cancellation, checked once per dequeued node.
//   - WithMaxDepth(d):    stop exploring beyond depth d (>0); 0 means no limit.
//   - WithOnVisit(fn):    hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartOutOfRange      if a start node is outside [0, N).
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrBadLimit             if BoundedPair receives limit < 1.
//   - Wrapped user-supplied hook errors from OnVisit, or ctx.Err().
package bfs
