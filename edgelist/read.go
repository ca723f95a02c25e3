// SPDX-License-Identifier: MIT
// Package: edgelist
//
// read.go - whitespace-separated edge-list parser.
//
// Format:
//   • One edge per line: "<a> <b> [weight] [ignored...]".
//   • Node tokens are arbitrary strings; indices follow first appearance.
//   • Blank lines and lines starting with '#' or '%' are skipped.
//   • Repeated pairs (in either orientation) keep the first line's weight.

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

const maxLineBytes = 1 << 20

// Option customizes Read.
type Option func(*readConfig)

type readConfig struct {
	weighted bool
}

// WithWeights makes the third field of every data line its weight.
func WithWeights() Option {
	return func(c *readConfig) {
		c.weighted = true
	}
}

// Read parses an edge list into a Network. Unweighted lists get
// core.DefaultWeight on every edge.
//
// Errors (wrapped with the line number):
//   - ErrTooFewFields, ErrSelfLoop, ErrBadWeight.
//   - I/O errors from r.
func Read(r io.Reader, opts ...Option) (*Network, error) {
	var cfg readConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	net := &Network{Graph: core.NewGraph(0), Index: make(map[string]int)}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' || text[0] == '%' {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("edgelist: line %d: %q: %w", line, text, ErrTooFewFields)
		}
		if fields[0] == fields[1] {
			return nil, fmt.Errorf("edgelist: line %d: node %q: %w", line, fields[0], ErrSelfLoop)
		}

		w := core.DefaultWeight
		if cfg.weighted {
			var err error
			if w, err = parseWeight(fields); err != nil {
				return nil, fmt.Errorf("edgelist: line %d: %w", line, err)
			}
		}

		a, b := net.node(fields[0]), net.node(fields[1])
		if net.Graph.HasEdge(a, b) {
			net.Duplicates++
			continue
		}
		net.Graph.SetEdge(a, b, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: line %d: %w", line+1, err)
	}

	return net, nil
}

func parseWeight(fields []string) (core.Weight, error) {
	if len(fields) < 3 {
		return 0, fmt.Errorf("missing weight: %w", ErrBadWeight)
	}
	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %v: %w", fields[2], err, ErrBadWeight)
	}
	if w == core.NoEdge || math.IsNaN(w) {
		return 0, fmt.Errorf("%q: %w", fields[2], ErrBadWeight)
	}

	return w, nil
}
