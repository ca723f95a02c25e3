// SPDX-License-Identifier: MIT
// Package: randomize
//
// recorder.go - diagnostic side channel for swap proposals and rounds.

package randomize

// RejectReason classifies why a swap proposal was not accepted.
type RejectReason int

const (
	// RejectInvalid: endpoint collision (i=j, m=n, m=j, n=i) or one of the
	// new edges i–n, j–m already exists.
	RejectInvalid RejectReason = iota
	// RejectDegenerate: the swap would pair two degree-1 nodes into an
	// isolated edge, so it is skipped without mutating the graph.
	RejectDegenerate
	// RejectIsolation: the bounded dual traversal found a small detached
	// component and the swap was reverted.
	RejectIsolation
)

// String returns the label used in logs and metrics.
func (r RejectReason) String() string {
	switch r {
	case RejectInvalid:
		return "invalid"
	case RejectDegenerate:
		return "degenerate"
	case RejectIsolation:
		return "isolation"
	default:
		return "unknown"
	}
}

// RoundReport describes one verification at the end of a round attempt.
type RoundReport struct {
	RunID        string
	Round        int // 1-based
	Rounds       int
	Attempt      int // 1 for the first pass of a round, +1 per rollback
	Connected    bool
	Limit        int // budget in effect during the attempt
	TriesPerSwap float64
}

// Recorder receives diagnostics. Implementations must be cheap: ObserveReject
// runs inside the swap loop.
type Recorder interface {
	ObserveReject(reason RejectReason)
	ObserveSwap(tries int)
	ObserveRound(report RoundReport)
}

type nopRecorder struct{}

func (nopRecorder) ObserveReject(RejectReason) {}
func (nopRecorder) ObserveSwap(int)            {}
func (nopRecorder) ObserveRound(RoundReport)   {}
