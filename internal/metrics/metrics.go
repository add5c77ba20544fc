package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Filter and hit search Prometheus metrics.
var (
	FilterEvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hitfilter",
			Name:      "filter_evaluations_total",
			Help:      "Total number of keyword filter evaluations",
		},
		[]string{"form_type", "result"}, // result: "match" / "miss"
	)

	FilterErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hitfilter",
			Name:      "filter_errors_total",
			Help:      "Total keyword filter evaluation errors",
		},
		[]string{"form_type"},
	)

	HitSearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hitfilter",
			Name:      "hit_searches_total",
			Help:      "Total closest node searches",
		},
		[]string{"mode", "result"}, // mode: "player" / "npc", result: "hit" / "none"
	)

	HitDistanceSquared = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hitfilter",
			Name:      "hit_distance_squared",
			Help:      "Squared distance from the query point to the returned node",
			Buckets:   []float64{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000},
		},
		[]string{"mode"},
	)
)

var registerOnce sync.Once

// Register registers the metrics with the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(FilterEvaluationsTotal)
		prometheus.MustRegister(FilterErrorsTotal)
		prometheus.MustRegister(HitSearchesTotal)
		prometheus.MustRegister(HitDistanceSquared)
	})
}

// WriteTextfile writes every registered metric in the text exposition format,
// for the node_exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer) //nolint:wrapcheck // caller adds context
}
