package randomize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anhncs/CommunityDetectionCodes/builder"
)

func TestRewire_RevertRestoresSlots(t *testing.T) {
	g := builder.MustBuild(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 9)},
		builder.RingOfCliques(3, 4),
	)
	before := g.Clone()

	// 0–1 and 5–6 are clique edges; 0–6 and 5–1 are absent.
	i, m, j, n := 0, 1, 5, 6
	require.False(t, g.HasEdge(i, n))
	require.False(t, g.HasEdge(j, m))
	wim, wjn := g.EdgeValue(i, m), g.EdgeValue(j, n)

	rewire(g, i, m, j, n)
	assert.Equal(t, wim, g.EdgeValue(i, n))
	assert.Equal(t, wjn, g.EdgeValue(j, m))
	assert.False(t, g.HasEdge(i, m))
	assert.False(t, g.HasEdge(j, n))
	assert.Equal(t, before.DegreeSequence(), g.DegreeSequence())

	rewire(g, i, n, j, m)
	require.True(t, g.Equal(before))
	for u := 0; u < g.Size(); u++ {
		for k := 0; k < g.Degree(u); k++ {
			assert.Equal(t, before.NeighborAt(u, k), g.NeighborAt(u, k), "node %d slot %d", u, k)
		}
	}
}
