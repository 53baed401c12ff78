// Package metrics holds the Prometheus collectors of the evaluation API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusInvalid = "invalid"
	StatusError   = "error"
)

type Metrics struct {
	// EvaluationCounter counts evaluation requests.
	// Labels: quality_measure, status (success|invalid|error)
	EvaluationCounter *prometheus.CounterVec

	// EvaluationDuration measures parsing plus aggregation time in seconds.
	// Labels: quality_measure
	EvaluationDuration *prometheus.HistogramVec

	// ListsPerReport observes the number of lists in each evaluated report.
	ListsPerReport prometheus.Histogram

	// MeanQuality observes the mean list quality of each evaluated report.
	MeanQuality prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EvaluationCounter: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sleval_evaluations_total",
				Help: "Total number of report evaluations by quality measure and status",
			},
			[]string{"quality_measure", "status"},
		),

		EvaluationDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sleval_evaluation_duration_seconds",
				Help:    "Duration of report evaluations in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"quality_measure"},
		),

		ListsPerReport: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sleval_report_lists",
				Help:    "Number of subgroup lists per evaluated report",
				Buckets: []float64{1, 2, 3, 5, 10, 20, 50},
			},
		),

		MeanQuality: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sleval_report_mean_quality",
				Help:    "Mean list quality of evaluated reports",
				Buckets: prometheus.LinearBuckets(-0.25, 0.05, 11),
			},
		),
	}
}

func (m *Metrics) Evaluated(measure string, lists int, meanQuality float64, elapsed time.Duration) {
	m.EvaluationCounter.WithLabelValues(measure, StatusSuccess).Inc()
	m.EvaluationDuration.WithLabelValues(measure).Observe(elapsed.Seconds())
	m.ListsPerReport.Observe(float64(lists))
	m.MeanQuality.Observe(meanQuality)
}

func (m *Metrics) Failed(measure, status string) {
	m.EvaluationCounter.WithLabelValues(measure, status).Inc()
}
