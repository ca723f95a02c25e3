// SPDX-License-Identifier: MIT
// Package: ensemble
//
// options.go - functional options for Run.

package ensemble

import (
	"github.com/sirupsen/logrus"

	"github.com/anhncs/CommunityDetectionCodes/randomize"
)

// Option customizes Run.
type Option func(*config)

type config struct {
	workers  int
	logger   logrus.FieldLogger
	recorder randomize.Recorder
	runID    string
}

func newConfig(opts ...Option) config {
	cfg := config{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers bounds the number of samples drawn at once; 0 means
// runtime.NumCPU(). Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("ensemble: WithWorkers(n<0)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger sets the parent logger; every sample logs with a "sample"
// field. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("ensemble: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithRecorder shares r across all samples. r must be safe for concurrent
// use (metrics.Recorder is).
func WithRecorder(r randomize.Recorder) Option {
	return func(c *config) {
		c.recorder = r
	}
}

// WithRunID sets the ensemble run ID; sample k logs as "<id>/<k>".
func WithRunID(id string) Option {
	return func(c *config) {
		c.runID = id
	}
}
