package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/anhncs/CommunityDetectionCodes/bfs"
	"github.com/anhncs/CommunityDetectionCodes/core"
)

func TestBoundedPair_Errors(t *testing.T) {
	_, err := bfs.BoundedPair(nil, 0, 1, 1)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := chain(3)
	_, err = bfs.BoundedPair(g, 0, 3, 1)
	require.ErrorIs(t, err, bfs.ErrStartOutOfRange)
	_, err = bfs.BoundedPair(g, 0, 1, 0)
	require.ErrorIs(t, err, bfs.ErrBadLimit)
}

func TestBoundedPair_LargeComponentsNotFinished(t *testing.T) {
	g := chain(20)
	res, err := bfs.BoundedPair(g, 0, 19, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Steps)
	assert.False(t, res.FinishedA)
	assert.False(t, res.FinishedB)
	assert.Equal(t, 3, res.VisitedA)
	assert.False(t, res.Isolated(g.Size()))
}

func TestBoundedPair_SmallComponentDetected(t *testing.T) {
	// 0-1 detached, 2..11 a path
	g := core.NewGraph(12)
	g.SetEdge(0, 1, core.DefaultWeight)
	for i := 2; i < 11; i++ {
		g.SetEdge(i, i+1, core.DefaultWeight)
	}

	res, err := bfs.BoundedPair(g, 0, 5, 4)
	require.NoError(t, err)
	assert.True(t, res.FinishedA, "two-node side exhausts within budget")
	assert.False(t, res.FinishedB)
	assert.Equal(t, 2, res.VisitedA)
	assert.Equal(t, 2, res.Steps, "loop stops once a side finishes")
	assert.True(t, res.Isolated(g.Size()))

	// Budget too small to see the detachment: the heuristic misses it.
	res, err = bfs.BoundedPair(g, 0, 5, 1)
	require.NoError(t, err)
	assert.False(t, res.Isolated(g.Size()))
}

func TestBoundedPair_FullReachIsNotIsolation(t *testing.T) {
	// limit == N turns the check exact: a connected graph is never flagged.
	g := core.NewGraph(4)
	for i := 0; i < 4; i++ {
		g.SetEdge(i, (i+1)%4, core.DefaultWeight)
	}
	res, err := bfs.BoundedPair(g, 0, 2, 4)
	require.NoError(t, err)
	assert.True(t, res.FinishedA)
	assert.Equal(t, 4, res.VisitedA)
	assert.False(t, res.Isolated(4))
}

// TestBoundedPair_ExactAtFullBudget cross-checks the limit == N case against
// gonum's component search on a batch of random sparse graphs.
func TestBoundedPair_ExactAtFullBudget(t *testing.T) {
	rnd := core.NewGenerator(11)
	for trial := 0; trial < 50; trial++ {
		const n = 12
		g := core.NewGraph(n)
		for k := 0; k < 12; k++ {
			a, b := rnd.Intn(n), rnd.Intn(n)
			if a != b {
				g.SetEdge(a, b, core.DefaultWeight)
			}
		}
		res, err := bfs.BoundedPair(g, 0, n-1, n)
		require.NoError(t, err)
		connected := len(topo.ConnectedComponents(core.Undirected(g))) == 1
		assert.Equal(t, connected, !res.Isolated(n), "trial %d", trial)
		assert.Equal(t, connected, bfs.Connected(g), "trial %d", trial)
	}
}
