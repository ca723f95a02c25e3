// SPDX-License-Identifier: MIT
// Package: metrics
//
// metrics.go - Prometheus implementation of randomize.Recorder.
//
// Series (namespace "netrand"):
//   • randomize_rejects_total{reason}      proposals not accepted, by reason
//   • randomize_swaps_total                accepted swaps
//   • randomize_tries_per_swap             histogram of tries per accepted swap
//   • randomize_verifications_total{result} exact checks, connected|disconnected
//   • randomize_limit                      traversal budget of the last attempt
//   • confmodel_attempts_total, confmodel_swaps_total
//
// All series are safe for concurrent use, so one Recorder may serve every
// sample of an ensemble.

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/anhncs/CommunityDetectionCodes/randomize"
)

const namespace = "netrand"

// Recorder exports swap and round diagnostics as Prometheus metrics.
type Recorder struct {
	rejects       *prometheus.CounterVec
	swaps         prometheus.Counter
	tries         prometheus.Histogram
	verifications *prometheus.CounterVec
	limit         prometheus.Gauge
	chainAttempts prometheus.Counter
	chainSwaps    prometheus.Counter
}

var _ randomize.Recorder = (*Recorder)(nil)

// New registers the recorder's series with reg. Registering twice with the
// same registry panics, as promauto does.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		rejects: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "randomize",
			Name:      "rejects_total",
			Help:      "Swap proposals not accepted, by reason",
		}, []string{"reason"}),
		swaps: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "randomize",
			Name:      "swaps_total",
			Help:      "Accepted degree-preserving swaps",
		}),
		tries: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "randomize",
			Name:      "tries_per_swap",
			Help:      "Tries needed per accepted swap",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 55},
		}),
		verifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "randomize",
			Name:      "verifications_total",
			Help:      "Exact connectivity checks at the end of a round attempt",
		}, []string{"result"}),
		limit: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "randomize",
			Name:      "limit",
			Help:      "Traversal budget in effect during the last round attempt",
		}),
		chainAttempts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "confmodel",
			Name:      "attempts_total",
			Help:      "Configuration-model swap attempts",
		}),
		chainSwaps: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "confmodel",
			Name:      "swaps_total",
			Help:      "Successful configuration-model swaps",
		}),
	}
}

// ObserveReject counts a rejected proposal.
func (r *Recorder) ObserveReject(reason randomize.RejectReason) {
	r.rejects.WithLabelValues(reason.String()).Inc()
}

// ObserveSwap counts an accepted swap and the tries it took.
func (r *Recorder) ObserveSwap(tries int) {
	r.swaps.Inc()
	r.tries.Observe(float64(tries))
}

// ObserveRound counts a verification and records the budget.
func (r *Recorder) ObserveRound(rep randomize.RoundReport) {
	result := "connected"
	if !rep.Connected {
		result = "disconnected"
	}
	r.verifications.WithLabelValues(result).Inc()
	r.limit.Set(float64(rep.Limit))
}

// ObserveChain records one configuration-model run.
func (r *Recorder) ObserveChain(attempts, swaps int) {
	r.chainAttempts.Add(float64(attempts))
	r.chainSwaps.Add(float64(swaps))
}

// WriteTextfile writes every series gathered by g to path in the text
// exposition format (node_exporter textfile collector).
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
