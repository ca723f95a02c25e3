// SPDX-License-Identifier: MIT
// Package: confmodel
//
// errors.go - sentinel errors for the configuration-model sampler.

package confmodel

import "errors"

var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("confmodel: graph is nil")

	// ErrNilGenerator indicates a nil core.Generator.
	ErrNilGenerator = errors.New("confmodel: generator is nil")

	// ErrNegativeAttempts indicates attempts < 0.
	ErrNegativeAttempts = errors.New("confmodel: attempts must be non-negative")
)
