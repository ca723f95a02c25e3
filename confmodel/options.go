// SPDX-License-Identifier: MIT
// Package: confmodel
//
// options.go - functional options for SampleSimple and Sampler.

package confmodel

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Option customizes a sampler.
type Option func(*config)

type config struct {
	ctx    context.Context
	logger logrus.FieldLogger
}

func newConfig(opts ...Option) config {
	cfg := config{ctx: context.Background(), logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithContext sets a context checked every few thousand attempts.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger sets the sink for the end-of-chain debug line. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("confmodel: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
