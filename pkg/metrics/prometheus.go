package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	fetchDuration  *prometheus.HistogramVec
	providerErrors *prometheus.CounterVec
	reportsTotal   *prometheus.CounterVec
	parseFailures  *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockscope_provider_fetch_duration_seconds",
				Help:    "Duration of provider retrievals in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		providerErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockscope_provider_errors_total",
				Help: "Total number of provider retrieval failures",
			},
			[]string{"provider", "kind"},
		),
		reportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockscope_reports_total",
				Help: "Total number of aggregation requests by outcome",
			},
			[]string{"outcome"},
		),
		parseFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockscope_parse_failures_total",
				Help: "Total number of raw field values that failed normalization",
			},
			[]string{"field"},
		),
	}
}

// RecordFetch records one provider retrieval duration.
func (r *Recorder) RecordFetch(provider string, seconds float64) {
	r.fetchDuration.WithLabelValues(provider).Observe(seconds)
}

// RecordProviderError records a provider failure by kind.
func (r *Recorder) RecordProviderError(provider, kind string) {
	r.providerErrors.WithLabelValues(provider, kind).Inc()
}

// RecordReport records a finished aggregation request by outcome.
func (r *Recorder) RecordReport(outcome string) {
	r.reportsTotal.WithLabelValues(outcome).Inc()
}

// RecordParseFailure records a field whose raw text did not normalize.
func (r *Recorder) RecordParseFailure(field string) {
	r.parseFailures.WithLabelValues(field).Inc()
}
