// SPDX-License-Identifier: MIT
// Package: randomize
//
// options.go - functional options for SwitchLinkPairEnds, Randomize and
// SwapNodeLabels.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs (nil
//     logger, non-positive proposal cap). Algorithms never panic.
//   • No hidden globals beyond logrus.StandardLogger() as the default sink.
//   • Randomness never flows through options: the Generator is an explicit
//     argument of every operation.

package randomize

import (
	"context"

	"github.com/sirupsen/logrus"
)

// DefaultMaxProposals caps the number of proposals drawn for one accepted swap.
const DefaultMaxProposals = 1 << 20

// Adaptive budget schedule applied by Randomize.
const (
	limitIncrease       = 5   // added after a rollback
	limitDecreaseChance = 0.1 // chance of -1 after success once a rollback was seen
	minLimit            = 1
)

// Option customizes a randomization call.
type Option func(*config)

type config struct {
	ctx          context.Context
	logger       logrus.FieldLogger
	recorder     Recorder
	maxProposals int
	runID        string
}

func newConfig(opts ...Option) config {
	cfg := config{
		ctx:          context.Background(),
		logger:       logrus.StandardLogger(),
		recorder:     nopRecorder{},
		maxProposals: DefaultMaxProposals,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithContext sets a context checked at round boundaries only, never in the
// middle of a round.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger sets the sink for per-round status lines. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("randomize: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithRecorder attaches a diagnostics Recorder (see package metrics).
// A nil recorder is ignored.
func WithRecorder(r Recorder) Option {
	return func(c *config) {
		if r != nil {
			c.recorder = r
		}
	}
}

// WithMaxProposals caps the proposals drawn per accepted swap. Panics if n < 1.
func WithMaxProposals(n int) Option {
	if n < 1 {
		panic("randomize: WithMaxProposals(n<1)")
	}
	return func(c *config) {
		c.maxProposals = n
	}
}

// WithRunID tags log lines and round reports. Randomize generates a UUID
// when none is given.
func WithRunID(id string) Option {
	return func(c *config) {
		c.runID = id
	}
}
