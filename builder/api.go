// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every constructor appends its own nodes with core.Graph.AddNodes, so
//     several constructors compose into a disjoint union of their fixtures.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse/RandomRegular).
//   - Use Connect(a, b) after two constructors to join the pieces with one edge.

package builder

import (
	"fmt"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

// Constructor appends a deterministic fixture to g using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching g and return sentinel errors (no panics).
//   - Add their nodes at the end of g (offset = g.Size() on entry).
//   - Emit edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(0)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures known to be valid (tests, examples).
// Panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// Connect returns a Constructor that adds one edge a–b between nodes that
// already exist. Useful for joining fixtures composed in one BuildGraph call.
func Connect(a, b int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return addEdge(g, cfg, methodConnect, a, b)
	}
}

// addEdge inserts a–b with a weight drawn from cfg and wraps core errors with
// the constructor name.
func addEdge(g *core.Graph, cfg builderConfig, method string, a, b int) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(a, b, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d–%d, w=%g): %w", method, a, b, w, err)
	}

	return nil
}
