package ensemble_test

import (
	"context"
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anhncs/CommunityDetectionCodes/builder"
	"github.com/anhncs/CommunityDetectionCodes/core"
	"github.com/anhncs/CommunityDetectionCodes/ensemble"
	"github.com/anhncs/CommunityDetectionCodes/metrics"
	"github.com/anhncs/CommunityDetectionCodes/randomize"
)

func quiet() ensemble.Option {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return ensemble.WithLogger(l)
}

func ring() *core.Graph {
	return builder.MustBuild(nil, builder.RingOfCliques(4, 5))
}

func TestRun_IndependentOfWorkers(t *testing.T) {
	g := ring()
	p := ensemble.Params{Mode: ensemble.ModeRandomize, Samples: 6, Seed: 100, Rounds: 3, Limit: 10}

	serial, err := ensemble.Run(context.Background(), g, p, ensemble.WithWorkers(1), quiet())
	require.NoError(t, err)
	parallel, err := ensemble.Run(context.Background(), g, p, ensemble.WithWorkers(4), quiet())
	require.NoError(t, err)

	require.Len(t, serial.Samples, 6)
	for k := range serial.Samples {
		a, b := serial.Samples[k], parallel.Samples[k]
		assert.Equal(t, k, a.Index)
		assert.Equal(t, int64(100+k), a.Seed)
		assert.True(t, a.Graph.Equal(b.Graph), "sample %d", k)
		assert.True(t, a.Connected)
		assert.Equal(t, g.DegreeSequence(), a.Graph.DegreeSequence())
		assert.Equal(t, 3, a.Result.Rounds)
	}
	assert.Equal(t, 1.0, serial.ConnectedFraction)
	assert.Equal(t, serial.MeanTriesPerSwap, parallel.MeanTriesPerSwap)
	assert.False(t, serial.Samples[0].Graph.Equal(serial.Samples[1].Graph), "different seeds differ")

	// the input is left alone
	assert.True(t, g.Equal(ring()))
}

func TestRun_ConfModel(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	g := ring()
	rep, err := ensemble.Run(context.Background(), g, ensemble.Params{
		Mode: ensemble.ModeConfModel, Samples: 4, Seed: 1, AttemptsPerEdge: 20,
	}, ensemble.WithRecorder(rec), quiet())
	require.NoError(t, err)

	for _, s := range rep.Samples {
		assert.Nil(t, s.Result)
		assert.Positive(t, s.Swaps)
		assert.Equal(t, g.DegreeSequence(), s.Graph.DegreeSequence())
	}
	assert.Equal(t, 0.0, rep.MeanTriesPerSwap)
	assert.GreaterOrEqual(t, rep.ConnectedFraction, 0.0)
	assert.LessOrEqual(t, rep.ConnectedFraction, 1.0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	var attempts float64
	for _, mf := range mfs {
		if mf.GetName() == "netrand_confmodel_attempts_total" {
			attempts = mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(4*20*g.NumEdges()), attempts)
}

func TestRun_SharedRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rep, err := ensemble.Run(context.Background(), ring(), ensemble.Params{
		Mode: ensemble.ModeRandomize, Samples: 8, Seed: 3, Rounds: 2, Limit: 10,
	}, ensemble.WithRecorder(metrics.New(reg)), ensemble.WithWorkers(4), quiet())
	require.NoError(t, err)
	require.Len(t, rep.Samples, 8)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	found := false
	for _, mf := range mfs {
		if mf.GetName() == "netrand_randomize_swaps_total" {
			found = true
			assert.Positive(t, mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
	assert.True(t, found)
}

func TestRun_FirstErrorWins(t *testing.T) {
	star := builder.MustBuild(nil, builder.Star(8))
	_, err := ensemble.Run(context.Background(), star, ensemble.Params{
		Mode: ensemble.ModeRandomize, Samples: 3, Seed: 1, Rounds: 1, Limit: 4, MaxProposals: 50,
	}, quiet())
	require.ErrorIs(t, err, randomize.ErrSwapExhausted)
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := ensemble.Run(ctx, nil, ensemble.Params{Mode: ensemble.ModeRandomize, Samples: 1, Limit: 1})
	require.ErrorIs(t, err, ensemble.ErrNilGraph)

	bad := []ensemble.Params{
		{Mode: ensemble.ModeRandomize, Samples: 0, Limit: 1},
		{Mode: "nope", Samples: 1},
		{Mode: ensemble.ModeRandomize, Samples: 1, Limit: 0},
		{Mode: ensemble.ModeConfModel, Samples: 1, AttemptsPerEdge: -1},
	}
	for _, p := range bad {
		_, err = ensemble.Run(ctx, ring(), p)
		require.ErrorIs(t, err, ensemble.ErrBadParams, "%+v", p)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = ensemble.Run(cancelled, ring(), ensemble.Params{Mode: ensemble.ModeRandomize, Samples: 2, Rounds: 1, Limit: 5}, quiet())
	require.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { ensemble.WithWorkers(-1) })
	assert.Panics(t, func() { ensemble.WithLogger(nil) })
}

func TestRun_LogsPerSample(t *testing.T) {
	logger, hook := test.NewNullLogger()
	_, err := ensemble.Run(context.Background(), ring(), ensemble.Params{
		Mode: ensemble.ModeRandomize, Samples: 2, Seed: 1, Rounds: 1, Limit: 10,
	}, ensemble.WithLogger(logger), ensemble.WithRunID("ens"), ensemble.WithWorkers(1))
	require.NoError(t, err)

	runIDs := map[interface{}]bool{}
	for _, e := range hook.AllEntries() {
		if e.Message == "net OK" {
			runIDs[e.Data["run_id"]] = true
			assert.Contains(t, e.Data, "sample")
		}
	}
	assert.Equal(t, map[interface{}]bool{"ens/0": true, "ens/1": true}, runIDs)
	assert.Equal(t, "ensemble: finished", hook.LastEntry().Message)
}
