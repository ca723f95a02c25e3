// SPDX-License-Identifier: MIT
// Package: edgelist
//
// errors.go - sentinel errors for edge-list I/O. Parse errors carry the
// 1-based line number: "edgelist: line 7: ...: <sentinel>".

package edgelist

import "errors"

var (
	// ErrSelfLoop indicates a line whose two endpoints are the same node.
	ErrSelfLoop = errors.New("edgelist: self-loop")

	// ErrTooFewFields indicates a data line with fewer than two tokens.
	ErrTooFewFields = errors.New("edgelist: expected at least two fields")

	// ErrBadWeight indicates a missing, unparsable, zero or NaN weight.
	ErrBadWeight = errors.New("edgelist: bad weight")

	// ErrNilNetwork indicates a nil *Network or a Network without a graph.
	ErrNilNetwork = errors.New("edgelist: network is nil")
)
