// SPDX-License-Identifier: MIT
// Package: randomize
//
// randomize.go - the round orchestrator.
//
// State machine per round:
//
//	Start ──► Swapping ──► Verifying ──connected──► Accepted
//	              ▲             │
//	              └─ RollingBack ◄─disconnected
//
//   • Start: snapshot the graph.
//   • Swapping: E accepted pair swaps (E = edge count).
//   • Verifying: exact bfs.Connected.
//   • RollingBack: restore the snapshot, limit += 5 (≤ N), redo the round.
//   • Accepted: lower the limit by one; after any rollback in this run only
//     with probability 0.1.
//
// Determinism:
//   • The generator is consumed in a fixed order: swap draws, then one
//     Float64 per accepted round once a rollback has been seen.

package randomize

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/anhncs/CommunityDetectionCodes/bfs"
	"github.com/anhncs/CommunityDetectionCodes/core"
)

const methodRandomize = "Randomize"

// Result summarizes a Randomize run.
type Result struct {
	// Graph is the randomized graph (the input, mutated in place).
	Graph *core.Graph
	// RunID tags every log line of the run.
	RunID string
	// Rounds is the number of completed (verified) rounds.
	Rounds int
	// Rollbacks counts failed verifications.
	Rollbacks int
	// InitialLimit and FinalLimit bracket the adaptive traversal budget.
	InitialLimit, FinalLimit int
	// TriesPerSwap holds, per completed round, the average tries per accepted
	// swap of the attempt that passed verification.
	TriesPerSwap []float64
	// MeanTriesPerSwap averages TriesPerSwap.
	MeanTriesPerSwap float64
}

// Randomize mixes the edges of g in place for the given number of rounds,
// keeping every node's degree and the graph's connectivity.
//
// One round makes E accepted pair swaps (see SwitchLinkPairEnds) and then
// checks connectivity exactly. A disconnected result is discarded, the budget
// limit is raised and the round starts over from its snapshot. Rounds are
// strictly sequential. 10 rounds are usually adequate, 100 plentiful; 15 is
// a good starting limit.
//
// Preconditions (errors):
//   - ErrNilGraph, ErrNilGenerator, ErrNegativeRounds.
//   - ErrLimitOutOfRange if limit ∉ [1, N].
//   - ErrTooFewEdges if rounds > 0 and g has fewer than two edges.
//   - ErrDisconnected if rounds > 0 and g is not connected.
//
// Runtime errors leave g at the state of the last verified round:
//   - ErrSwapExhausted when a graph admits no acceptable swap.
//   - ctx.Err() from WithContext, checked before each round.
//
// The returned Result is non-nil whenever the preconditions hold.
func Randomize(g *core.Graph, rnd core.Generator, rounds, limit int, opts ...Option) (*Result, error) {
	if err := validate(methodRandomize, g, rnd); err != nil {
		return nil, err
	}
	if rounds < 0 {
		return nil, fmt.Errorf("%s: rounds=%d: %w", methodRandomize, rounds, ErrNegativeRounds)
	}
	if err := checkLimit(methodRandomize, g, limit); err != nil {
		return nil, err
	}
	if rounds > 0 {
		if g.NumEdges() < 2 {
			return nil, fmt.Errorf("%s: E=%d: %w", methodRandomize, g.NumEdges(), ErrTooFewEdges)
		}
		if !bfs.Connected(g) {
			return nil, fmt.Errorf("%s: %w", methodRandomize, ErrDisconnected)
		}
	}

	cfg := newConfig(opts...)
	if cfg.runID == "" {
		cfg.runID = uuid.NewString()
	}
	o := &orchestrator{
		s:      &swapper{g: g, rnd: rnd, cfg: cfg, n: g.Size()},
		log:    cfg.logger.WithField("run_id", cfg.runID),
		limit:  limit,
		rounds: rounds,
		res: &Result{
			Graph:        g,
			RunID:        cfg.runID,
			InitialLimit: limit,
			TriesPerSwap: make([]float64, 0, rounds),
		},
	}

	err := o.run()
	o.res.FinalLimit = o.limit
	if len(o.res.TriesPerSwap) > 0 {
		o.res.MeanTriesPerSwap = stat.Mean(o.res.TriesPerSwap, nil)
	}

	return o.res, err
}

// orchestrator carries the mutable state of one Randomize run.
type orchestrator struct {
	s        *swapper
	log      logrus.FieldLogger
	limit    int
	rounds   int
	sawSplit bool // a rollback happened earlier in this run
	res      *Result
}

func (o *orchestrator) run() error {
	g := o.s.g
	numLinks := g.NumEdges()
	o.log.WithFields(logrus.Fields{
		"nodes": g.Size(), "edges": numLinks, "rounds": o.rounds, "limit": o.limit,
	}).Info("randomize: starting, keeping the degree distribution intact")

	var backup *core.Graph
	for r := 0; r < o.rounds; r++ {
		if err := o.s.cfg.ctx.Err(); err != nil {
			return fmt.Errorf("%s: stopped before round %d/%d: %w", methodRandomize, r+1, o.rounds, err)
		}

		// Start
		if backup == nil {
			backup = g.Clone()
		} else if err := backup.CopyFrom(g); err != nil {
			return fmt.Errorf("%s: %w", methodRandomize, err)
		}

		for attempt := 1; ; attempt++ {
			// Swapping
			tries := 0
			for k := 0; k < numLinks; k++ {
				t, err := o.s.swap(o.limit)
				tries += t
				if err != nil {
					if rerr := g.CopyFrom(backup); rerr != nil {
						return fmt.Errorf("%s: %w", methodRandomize, rerr)
					}
					return fmt.Errorf("%s: round %d/%d: %w", methodRandomize, r+1, o.rounds, err)
				}
			}
			perSwap := float64(tries) / float64(numLinks)

			// Verifying
			connected := bfs.Connected(g)
			o.report(r, attempt, connected, perSwap)
			if !connected {
				// RollingBack
				if err := g.CopyFrom(backup); err != nil {
					return fmt.Errorf("%s: %w", methodRandomize, err)
				}
				o.limit = min(o.limit+limitIncrease, g.Size())
				o.sawSplit = true
				o.res.Rollbacks++
				continue
			}

			// Accepted
			o.res.TriesPerSwap = append(o.res.TriesPerSwap, perSwap)
			o.res.Rounds++
			o.relax()
			break
		}
	}
	o.log.WithField("rollbacks", o.res.Rollbacks).Info("randomize: finished")

	return nil
}

// relax lowers the budget after a verified round.
func (o *orchestrator) relax() {
	if o.sawSplit {
		if o.s.rnd.Float64() < limitDecreaseChance && o.limit > minLimit {
			o.limit--
		}
		return
	}
	if o.limit > minLimit {
		o.limit--
	}
}

// report emits the per-verification status line and Recorder event.
func (o *orchestrator) report(r, attempt int, connected bool, perSwap float64) {
	rep := RoundReport{
		RunID:        o.res.RunID,
		Round:        r + 1,
		Rounds:       o.rounds,
		Attempt:      attempt,
		Connected:    connected,
		Limit:        o.limit,
		TriesPerSwap: perSwap,
	}
	o.s.cfg.recorder.ObserveRound(rep)

	entry := o.log.WithFields(logrus.Fields{
		"round":          fmt.Sprintf("%d/%d", rep.Round, rep.Rounds),
		"attempt":        attempt,
		"connected":      connected,
		"limit":          rep.Limit,
		"tries_per_swap": perSwap,
	})
	if connected {
		entry.Info("net OK")
		return
	}
	entry.Warn("disconnected, using backup")
}
