package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every pdist collector. It is separate from the default
// registry so exported files carry no Go runtime metrics.
var Registry = prometheus.NewRegistry()

var (
	// KernelDurationSeconds measures single kernel computations
	KernelDurationSeconds = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pdist",
			Name:      "kernel_duration_seconds",
			Help:      "Duration of one pairwise distance computation",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		},
		[]string{"kernel"},
	)

	// PairsComputedTotal counts distances written by each kernel
	PairsComputedTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pdist",
			Name:      "pairs_computed_total",
			Help:      "Total number of pair distances computed",
		},
		[]string{"kernel"},
	)

	// VerificationFailuresTotal counts kernel results that disagreed with the reference
	VerificationFailuresTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pdist",
			Name:      "verification_failures_total",
			Help:      "Total number of kernel results outside tolerance of the reference",
		},
		[]string{"kernel"},
	)

	// PointsLoaded records the size of the most recently loaded point set
	PointsLoaded = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pdist",
			Name:      "points_loaded",
			Help:      "Number of points in the most recently loaded input",
		},
	)
)

func ObserveComputation(kernel string, pairs int, elapsed time.Duration) {
	KernelDurationSeconds.WithLabelValues(kernel).Observe(elapsed.Seconds())
	PairsComputedTotal.WithLabelValues(kernel).Add(float64(pairs))
}

// WriteTextfile writes all collectors in the text exposition format, as read
// by the node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
