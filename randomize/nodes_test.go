package randomize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anhncs/CommunityDetectionCodes/builder"
	"github.com/anhncs/CommunityDetectionCodes/core"
	"github.com/anhncs/CommunityDetectionCodes/randomize"
)

func TestExchangeNodes(t *testing.T) {
	// adjacent pair keeps its shared edge
	g := builder.MustBuild(nil, builder.Path(4))
	randomize.ExchangeNodes(g, 1, 2)
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(1, 3))
	assert.Equal(t, 3, g.NumEdges())

	// endpoints
	g = builder.MustBuild(nil, builder.Path(4))
	randomize.ExchangeNodes(g, 0, 3)
	assert.True(t, g.HasEdge(3, 1))
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(1, 2))
	assert.Equal(t, []int{1, 2, 2, 1}, g.DegreeSequence())

	// common neighbor and weights
	g = core.NewGraph(3)
	g.SetEdge(0, 2, 5)
	g.SetEdge(1, 2, 7)
	randomize.ExchangeNodes(g, 0, 1)
	assert.Equal(t, core.Weight(7), g.EdgeValue(0, 2))
	assert.Equal(t, core.Weight(5), g.EdgeValue(1, 2))

	// no-ops
	before := g.Clone()
	randomize.ExchangeNodes(g, 1, 1)
	randomize.ExchangeNodes(g, -1, 1)
	randomize.ExchangeNodes(g, 0, 3)
	assert.True(t, g.Equal(before))
}

func TestSwapNodeLabels(t *testing.T) {
	_, _, err := randomize.SwapNodeLabels(core.NewGraph(1), core.NewGenerator(1))
	require.ErrorIs(t, err, randomize.ErrTooFewNodes)
	_, _, err = randomize.SwapNodeLabels(nil, core.NewGenerator(1))
	require.ErrorIs(t, err, randomize.ErrNilGraph)

	g := builder.MustBuild(nil, builder.Wheel(5))
	degrees := g.DegreeSequence()
	rnd := core.NewGenerator(6)
	for k := 0; k < 20; k++ {
		before := g.DegreeSequence()
		i, j, err := randomize.SwapNodeLabels(g, rnd, quiet())
		require.NoError(t, err)
		require.NotEqual(t, i, j)
		assert.Equal(t, before[i], g.Degree(j))
		assert.Equal(t, before[j], g.Degree(i))
	}
	assert.Equal(t, 10, g.NumEdges())
	assert.ElementsMatch(t, degrees, g.DegreeSequence())
}
