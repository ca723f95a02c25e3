// SPDX-License-Identifier: MIT
// Package: randomize
//
// errors.go - sentinel errors for the randomize package.
//
// Error policy:
//   • Only precondition violations surface as errors. Rejected swap proposals
//     and round-level disconnections are handled internally and are visible
//     only through the Recorder and the logger.
//   • Callers branch with errors.Is; context is attached with %w.

package randomize

import "errors"

var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("randomize: graph is nil")

	// ErrNilGenerator indicates a nil core.Generator.
	ErrNilGenerator = errors.New("randomize: generator is nil")

	// ErrLimitOutOfRange indicates a traversal budget outside [1, N].
	ErrLimitOutOfRange = errors.New("randomize: limit out of range")

	// ErrTooFewEdges indicates a swap was requested on a graph with fewer than two edges.
	ErrTooFewEdges = errors.New("randomize: graph has fewer than two edges")

	// ErrTooFewNodes indicates a node swap was requested on a graph with fewer than two nodes.
	ErrTooFewNodes = errors.New("randomize: graph has fewer than two nodes")

	// ErrNegativeRounds indicates rounds < 0.
	ErrNegativeRounds = errors.New("randomize: rounds must be non-negative")

	// ErrDisconnected indicates the input graph is not connected, so no round
	// could ever pass the exact connectivity check.
	ErrDisconnected = errors.New("randomize: input graph is not connected")

	// ErrSwapExhausted indicates the proposal budget ran out before a swap was
	// accepted (e.g. stars and complete graphs admit no valid swap).
	ErrSwapExhausted = errors.New("randomize: no acceptable swap found")
)
