// SPDX-License-Identifier: MIT
// Package core_test exercises the Graph store: edge toggling, neighbor views,
// uniform neighbor selection and snapshots.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

// Common weights used across core tests.
const (
	W1 core.Weight = 1
	W2 core.Weight = 2.5
	W3 core.Weight = 3
)

// square builds the 4-cycle 0-1-2-3-0 with DefaultWeight.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(4)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%4, core.DefaultWeight))
	}
	return g
}

func TestNewGraph(t *testing.T) {
	g := core.NewGraph(5)
	assert.Equal(t, 5, g.Size())
	assert.Equal(t, 0, g.NumEdges())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, g.IsolatedNodes())

	assert.Panics(t, func() { core.NewGraph(-1) })
	assert.Equal(t, 0, core.NewGraph(0).Size())
}

func TestSetEdge_CreateUpdateRemove(t *testing.T) {
	g := core.NewGraph(3)

	g.SetEdge(0, 1, W2)
	require.Equal(t, 1, g.NumEdges())
	assert.Equal(t, W2, g.EdgeValue(0, 1))
	assert.Equal(t, W2, g.EdgeValue(1, 0), "undirected mirror")
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 1, g.Degree(1))

	// update keeps the edge count
	g.SetEdge(1, 0, W3)
	assert.Equal(t, 1, g.NumEdges())
	assert.Equal(t, W3, g.EdgeValue(0, 1))

	// removal through the sentinel
	g.SetEdge(0, 1, core.NoEdge)
	assert.Equal(t, 0, g.NumEdges())
	assert.False(t, g.HasEdge(0, 1))
	assert.Equal(t, 0, g.Degree(0))

	// removing an absent edge is a no-op
	g.SetEdge(0, 2, core.NoEdge)
	assert.Equal(t, 0, g.NumEdges())
}

func TestEdgeValue_OutOfRange(t *testing.T) {
	g := square(t)
	assert.Equal(t, core.NoEdge, g.EdgeValue(-1, 0))
	assert.Equal(t, core.NoEdge, g.EdgeValue(9, 0))
	assert.Equal(t, core.NoEdge, g.EdgeValue(0, 9))
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, W1))

	tests := []struct {
		name string
		a, b int
		w    core.Weight
		want error
	}{
		{"out of range", 0, 3, W1, core.ErrNodeOutOfRange},
		{"negative", -1, 0, W1, core.ErrNodeOutOfRange},
		{"self loop", 2, 2, W1, core.ErrLoopNotAllowed},
		{"sentinel weight", 1, 2, core.NoEdge, core.ErrBadWeight},
		{"duplicate", 1, 0, W1, core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, g.AddEdge(tc.a, tc.b, tc.w), tc.want)
		})
	}
	assert.Equal(t, 1, g.NumEdges(), "failed AddEdge must not mutate")
}

func TestNeighbors_LazyAndRestartable(t *testing.T) {
	g := square(t)
	g.SetEdge(0, 2, W3)

	collect := func() map[int]core.Weight {
		m := map[int]core.Weight{}
		for v, w := range g.Neighbors(0) {
			m[v] = w
		}
		return m
	}
	want := map[int]core.Weight{1: core.DefaultWeight, 3: core.DefaultWeight, 2: W3}
	assert.Equal(t, want, collect())
	assert.Equal(t, want, collect(), "second pass yields the same view")

	// early break
	count := 0
	for range g.Neighbors(0) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestNeighborSlots_SwapRemove(t *testing.T) {
	g := core.NewGraph(5)
	for v := 1; v < 5; v++ {
		g.SetEdge(0, v, W1)
	}
	// slots: [1 2 3 4]; removing 2 moves 4 into slot 1
	g.SetEdge(0, 2, core.NoEdge)
	got := []int{}
	for k := 0; k < g.Degree(0); k++ {
		got = append(got, g.NeighborAt(0, k))
	}
	assert.Equal(t, []int{1, 4, 3}, got)
	assert.True(t, g.HasEdge(0, 4))
	assert.False(t, g.HasEdge(2, 0))
}

func TestRandNeighbor(t *testing.T) {
	g := core.NewGraph(4)
	g.SetEdge(0, 1, W1)
	g.SetEdge(0, 2, W1)
	rnd := core.NewGenerator(7)

	seen := map[int]int{}
	for i := 0; i < 600; i++ {
		v, err := g.RandNeighbor(0, rnd)
		require.NoError(t, err)
		seen[v]++
	}
	require.Len(t, seen, 2)
	assert.InDelta(t, 300, seen[1], 60)
	assert.InDelta(t, 300, seen[2], 60)

	_, err := g.RandNeighbor(3, rnd)
	require.ErrorIs(t, err, core.ErrIsolatedNode)
	_, err = g.RandNeighbor(4, rnd)
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

func TestEdges_Canonical(t *testing.T) {
	g := core.NewGraph(4)
	g.SetEdge(3, 0, W2)
	g.SetEdge(2, 1, W1)
	g.SetEdge(1, 0, W3)

	assert.Equal(t, []core.Edge{
		{U: 0, V: 1, Weight: W3},
		{U: 0, V: 3, Weight: W2},
		{U: 1, V: 2, Weight: W1},
	}, g.Edges())
}

func TestDegreeSequence(t *testing.T) {
	g := square(t)
	g.SetEdge(0, 2, W1)
	assert.Equal(t, []int{3, 2, 3, 2}, g.DegreeSequence())
}

func TestClone_Independent(t *testing.T) {
	g := square(t)
	c := g.Clone()
	require.True(t, g.Equal(c))

	c.SetEdge(0, 1, core.NoEdge)
	c.SetEdge(0, 2, W1)
	assert.True(t, g.HasEdge(0, 1), "source untouched")
	assert.False(t, g.HasEdge(0, 2))
	assert.False(t, g.Equal(c))
}

func TestCopyFrom_RestoresSlotOrder(t *testing.T) {
	g := square(t)
	snap := g.Clone()

	// rewire, then restore
	g.SetEdge(0, 1, core.NoEdge)
	g.SetEdge(2, 3, core.NoEdge)
	g.SetEdge(0, 2, W1)
	g.SetEdge(1, 3, W1)
	require.NoError(t, g.CopyFrom(snap))
	require.True(t, g.Equal(snap))

	for a := 0; a < g.Size(); a++ {
		for k := 0; k < g.Degree(a); k++ {
			assert.Equal(t, snap.NeighborAt(a, k), g.NeighborAt(a, k), "slot %d of node %d", k, a)
		}
	}

	require.ErrorIs(t, g.CopyFrom(core.NewGraph(3)), core.ErrSizeMismatch)
}

func TestEqual(t *testing.T) {
	a := square(t)
	b := square(t)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal(core.NewGraph(4)))

	b.SetEdge(0, 1, W3)
	assert.False(t, a.Equal(b), "weights are compared")
}

func TestAddNodes(t *testing.T) {
	g := square(t)
	first := g.AddNodes(2)
	assert.Equal(t, 4, first)
	assert.Equal(t, 6, g.Size())
	assert.Equal(t, 4, g.NumEdges())
	assert.Equal(t, []int{4, 5}, g.IsolatedNodes())

	require.NoError(t, g.AddEdge(3, 5, W1))
	assert.Equal(t, 1, g.Degree(5))
	assert.Equal(t, 6, g.AddNodes(0))
	assert.Panics(t, func() { g.AddNodes(-1) })
}
