// Package randomize produces degree-preserving, connectivity-preserving
// randomizations of an undirected network by repeated double-edge swaps.
//
// What
//
//   - SwitchLinkPairEnds(g, rnd, limit, opts...) performs one accepted swap
//     i–m, j–n → i–n, j–m and returns the number of tries it needed.
//   - Randomize(g, rnd, rounds, limit, opts...) runs rounds of E swaps, checks
//     connectivity exactly after each round, rolls back and retries a round
//     that split the graph, and adapts the traversal budget limit.
//   - SwapNodeLabels(g, rnd) exchanges the neighborhoods of two random nodes.
//
// Why two connectivity checks
//
//	Each swap is screened with bfs.BoundedPair, a lock-step traversal from
//	both rewired endpoints that costs O(limit·Δ). It catches the usual way a
//	swap disconnects a network: a small piece next to an endpoint. Larger
//	detachments slip through and are caught by the exact check at the end of
//	the round. Every detected miss raises limit by 5 (capped at N); every
//	verified round lowers it by one, or only with probability 0.1 once a
//	miss has been seen. The budget thus settles just above the size of the
//	pieces this network tends to shed.
//
// Determinism
//
//	Given the same graph (including its neighbor slot order), the same
//	Generator state and the same arguments, results are bit-identical. All
//	randomness flows through the explicit core.Generator.
//
// Concurrency
//
//	Operations mutate g in place and are not safe for concurrent use on the
//	same graph. Run independent samples on clones (see package ensemble).
//
// Errors
//
//   - ErrNilGraph, ErrNilGenerator        missing inputs.
//   - ErrLimitOutOfRange                  limit ∉ [1, N].
//   - ErrTooFewEdges, ErrTooFewNodes      nothing to swap.
//   - ErrNegativeRounds                   rounds < 0.
//   - ErrDisconnected                     Randomize needs a connected input.
//   - ErrSwapExhausted                    no acceptable swap within the cap.
package randomize
