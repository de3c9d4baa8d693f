package batch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Failure reasons recorded on failuresTotal.
const (
	reasonArity     = "arity"
	reasonPanic     = "panic"
	reasonNonFinite = "non_finite"
	reasonCheck     = "check"
)

var (
	// pointsTotal counts evaluated points, successful or not.
	pointsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sparsead_batch_points_total",
		Help: "Total points evaluated by batch evaluators",
	})

	// failuresTotal counts failed points by reason.
	failuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sparsead_batch_failures_total",
		Help: "Total failed batch points by reason",
	}, []string{"reason"})

	// pointDuration tracks per-point evaluation latency.
	pointDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sparsead_batch_point_duration_seconds",
		Help:    "Per-point evaluation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10), // 1µs to ~0.26s
	})
)
