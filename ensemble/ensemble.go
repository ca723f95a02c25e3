// SPDX-License-Identifier: MIT
// Package: ensemble
//
// ensemble.go - independent null-model samples in parallel.
//
// Model:
//   • Sample k works on its own clone of the input with its own generator
//     seeded base+k, so each sample depends only on (input, base, k) and the
//     ensemble is identical for any worker count or schedule.
//   • The input graph is only read (cloned), never mutated.
//   • The first failing sample cancels the rest (errgroup).

package ensemble

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/anhncs/CommunityDetectionCodes/bfs"
	"github.com/anhncs/CommunityDetectionCodes/confmodel"
	"github.com/anhncs/CommunityDetectionCodes/core"
	"github.com/anhncs/CommunityDetectionCodes/randomize"
)

// Mode selects the null model.
type Mode string

const (
	// ModeRandomize keeps degrees and connectivity (randomize.Randomize).
	ModeRandomize Mode = "randomize"
	// ModeConfModel keeps degrees only (confmodel.SampleSimple).
	ModeConfModel Mode = "confmodel"
)

var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("ensemble: graph is nil")
	// ErrBadParams indicates samples < 1, an unknown mode, limit < 1 in
	// ModeRandomize or a negative count.
	ErrBadParams = errors.New("ensemble: invalid parameters")
)

// Params describes an ensemble.
type Params struct {
	Mode    Mode
	Samples int
	Seed    int64 // sample k uses Seed + k

	// ModeRandomize
	Rounds       int
	Limit        int
	MaxProposals int // 0 means randomize.DefaultMaxProposals

	// ModeConfModel
	AttemptsPerEdge int
}

// Sample is one member of the ensemble.
type Sample struct {
	Index     int
	Seed      int64
	Graph     *core.Graph
	Connected bool
	// Result is set in ModeRandomize.
	Result *randomize.Result
	// Swaps is the number of successful swaps in ModeConfModel.
	Swaps int
}

// Report is the outcome of Run, samples ordered by index.
type Report struct {
	RunID   string
	Mode    Mode
	Samples []Sample
	// MeanTriesPerSwap averages Result.MeanTriesPerSwap (ModeRandomize).
	MeanTriesPerSwap float64
	// ConnectedFraction is the share of connected samples.
	ConnectedFraction float64
}

// chainObserver is implemented by recorders that also track the
// configuration-model chain (metrics.Recorder).
type chainObserver interface {
	ObserveChain(attempts, swaps int)
}

// Run draws p.Samples independent samples from g.
//
// Errors:
//   - ErrNilGraph, ErrBadParams.
//   - The first sample error (randomize or confmodel sentinels), or ctx.Err().
func Run(ctx context.Context, g *core.Graph, p Params, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, fmt.Errorf("ensemble: %w", ErrNilGraph)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	if cfg.runID == "" {
		cfg.runID = uuid.NewString()
	}
	workers := cfg.workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	log := cfg.logger.WithFields(logrus.Fields{"run_id": cfg.runID, "mode": p.Mode})
	log.WithFields(logrus.Fields{"samples": p.Samples, "workers": workers, "seed": p.Seed}).
		Info("ensemble: starting")

	samples := make([]Sample, p.Samples)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for k := 0; k < p.Samples; k++ {
		eg.Go(func() error {
			s, err := draw(egCtx, g, p, k, cfg, log.WithField("sample", k))
			if err != nil {
				return fmt.Errorf("ensemble: sample %d: %w", k, err)
			}
			samples[k] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{RunID: cfg.runID, Mode: p.Mode, Samples: samples}
	connected := make([]float64, len(samples))
	var tries []float64
	for k, s := range samples {
		if s.Connected {
			connected[k] = 1
		}
		if s.Result != nil && s.Result.Rounds > 0 {
			tries = append(tries, s.Result.MeanTriesPerSwap)
		}
	}
	rep.ConnectedFraction = stat.Mean(connected, nil)
	if len(tries) > 0 {
		rep.MeanTriesPerSwap = stat.Mean(tries, nil)
	}
	log.WithField("connected_fraction", rep.ConnectedFraction).Info("ensemble: finished")

	return rep, nil
}

// draw produces sample k.
func draw(ctx context.Context, g *core.Graph, p Params, k int, cfg config, log logrus.FieldLogger) (Sample, error) {
	if err := ctx.Err(); err != nil {
		return Sample{}, err
	}
	s := Sample{Index: k, Seed: p.Seed + int64(k), Graph: g.Clone()}
	rnd := core.NewGenerator(s.Seed)

	switch p.Mode {
	case ModeRandomize:
		opts := []randomize.Option{
			randomize.WithContext(ctx),
			randomize.WithLogger(log),
			randomize.WithRunID(fmt.Sprintf("%s/%d", cfg.runID, k)),
			randomize.WithRecorder(cfg.recorder),
		}
		if p.MaxProposals > 0 {
			opts = append(opts, randomize.WithMaxProposals(p.MaxProposals))
		}
		res, err := randomize.Randomize(s.Graph, rnd, p.Rounds, min(p.Limit, max(1, s.Graph.Size())), opts...)
		if err != nil {
			return Sample{}, err
		}
		s.Result = res
	case ModeConfModel:
		attempts := p.AttemptsPerEdge * s.Graph.NumEdges()
		n, err := confmodel.SampleSimple(s.Graph, rnd, attempts,
			confmodel.WithContext(ctx), confmodel.WithLogger(log))
		if err != nil {
			return Sample{}, err
		}
		s.Swaps = n
		if co, ok := cfg.recorder.(chainObserver); ok {
			co.ObserveChain(attempts, n)
		}
	}
	s.Connected = bfs.Connected(s.Graph)

	return s, nil
}

func (p Params) validate() error {
	switch {
	case p.Samples < 1:
		return fmt.Errorf("ensemble: samples=%d: %w", p.Samples, ErrBadParams)
	case p.Mode != ModeRandomize && p.Mode != ModeConfModel:
		return fmt.Errorf("ensemble: mode=%q: %w", p.Mode, ErrBadParams)
	case p.Mode == ModeRandomize && p.Limit < 1:
		return fmt.Errorf("ensemble: limit=%d: %w", p.Limit, ErrBadParams)
	case p.Rounds < 0 || p.AttemptsPerEdge < 0 || p.MaxProposals < 0:
		return fmt.Errorf("ensemble: negative count: %w", ErrBadParams)
	}

	return nil
}
