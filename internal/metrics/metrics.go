// Package metrics exposes Prometheus instruments for chart computation, the
// HTTP API and batch runs.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/papapumpkin/bodygraph/internal/fault"
)

// Metrics provides observability for the chart pipeline. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	// Computed charts by type
	ChartsTotal *prometheus.CounterVec

	// Failed charts by error class
	ChartFailures *prometheus.CounterVec

	// End-to-end chart latency
	ChartLatency prometheus.Histogram

	// HTTP requests by route and status code
	HTTPRequests *prometheus.CounterVec

	// HTTP latency by route
	HTTPLatency *prometheus.HistogramVec

	// Batch items by outcome
	BatchItems *prometheus.CounterVec
}

// New creates the instruments and registers them with reg. Passing
// prometheus.DefaultRegisterer matches the global-registry behavior of
// promauto; tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ChartsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bodygraph_charts_total",
			Help: "Total charts computed, by type",
		}, []string{"type"}),

		ChartFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bodygraph_chart_failures_total",
			Help: "Total chart failures, by error class",
		}, []string{"class"}), // class: "validation", "calculation", "consistency", "other"

		ChartLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "bodygraph_chart_duration_seconds",
			Help:    "Duration of a full chart computation",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		}),

		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bodygraph_http_requests_total",
			Help: "Total HTTP requests, by route and status",
		}, []string{"route", "status"}),

		HTTPLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bodygraph_http_request_duration_seconds",
			Help:    "Duration of HTTP requests, by route",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		}, []string{"route"}),

		BatchItems: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bodygraph_batch_items_total",
			Help: "Total batch items processed, by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveChart records a computed chart of the given type.
func (m *Metrics) ObserveChart(chartType string, d time.Duration) {
	if m != nil {
		m.ChartsTotal.WithLabelValues(chartType).Inc()
		m.ChartLatency.Observe(d.Seconds())
	}
}

// ObserveFailure records a failed chart under its error class.
func (m *Metrics) ObserveFailure(err error) {
	if m != nil {
		m.ChartFailures.WithLabelValues(Class(err)).Inc()
	}
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(route string, status int, d time.Duration) {
	if m != nil {
		m.HTTPRequests.WithLabelValues(route, statusLabel(status)).Inc()
		m.HTTPLatency.WithLabelValues(route).Observe(d.Seconds())
	}
}

// ObserveBatchItem records one batch item outcome.
func (m *Metrics) ObserveBatchItem(ok bool) {
	if m != nil {
		outcome := "ok"
		if !ok {
			outcome = "failed"
		}
		m.BatchItems.WithLabelValues(outcome).Inc()
	}
}

// Class names the error class of err for labelling.
func Class(err error) string {
	var (
		ve *fault.ValidationError
		ce *fault.CalculationError
		ke *fault.ConsistencyError
	)
	switch {
	case errors.As(err, &ve):
		return "validation"
	case errors.As(err, &ce):
		return "calculation"
	case errors.As(err, &ke):
		return "consistency"
	default:
		return "other"
	}
}

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
