// SPDX-License-Identifier: MIT
// Package: edgelist
//
// write.go - edge-list and DOT writers.

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// Write emits one "name name" line per edge in canonical order, followed by
// the weight when weighted is true. The output reads back with Read (and
// WithWeights when weighted).
func Write(w io.Writer, net *Network, weighted bool) error {
	if net == nil || net.Graph == nil {
		return ErrNilNetwork
	}
	bw := bufio.NewWriter(w)
	for _, e := range net.Graph.Edges() {
		var err error
		if weighted {
			_, err = fmt.Fprintf(bw, "%s %s %s\n", net.Name(e.U), net.Name(e.V),
				strconv.FormatFloat(e.Weight, 'g', -1, 64))
		} else {
			_, err = fmt.Fprintf(bw, "%s %s\n", net.Name(e.U), net.Name(e.V))
		}
		if err != nil {
			return fmt.Errorf("edgelist: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}

	return nil
}

// dotNode carries the external name into the DOT output.
type dotNode struct {
	id   int64
	name string
}

func (n dotNode) ID() int64     { return n.id }
func (n dotNode) DOTID() string { return n.name }

// dotEdge carries the weight as a DOT attribute.
type dotEdge struct {
	f, t dotNode
	w    float64
}

func (e dotEdge) From() graph.Node         { return e.f }
func (e dotEdge) To() graph.Node           { return e.t }
func (e dotEdge) ReversedEdge() graph.Edge { return dotEdge{f: e.t, t: e.f, w: e.w} }
func (e dotEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "weight", Value: strconv.FormatFloat(e.w, 'g', -1, 64)}}
}

// WriteDOT renders the network as an undirected Graphviz graph named name.
func WriteDOT(w io.Writer, net *Network, name string) error {
	if net == nil || net.Graph == nil {
		return ErrNilNetwork
	}
	ug := simple.NewUndirectedGraph()
	nodes := make([]dotNode, net.Graph.Size())
	for i := range nodes {
		nodes[i] = dotNode{id: int64(i), name: net.Name(i)}
		ug.AddNode(nodes[i])
	}
	for _, e := range net.Graph.Edges() {
		ug.SetEdge(dotEdge{f: nodes[e.U], t: nodes[e.V], w: e.Weight})
	}

	b, err := dot.Marshal(ug, name, "", "\t")
	if err != nil {
		return fmt.Errorf("edgelist: dot: %w", err)
	}
	if _, err = w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("edgelist: dot: %w", err)
	}

	return nil
}
