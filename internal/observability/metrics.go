package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the report service.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec // labels: outcome={ok,bad_zip,zip_not_found,upstream_error}
	RequestDuration prometheus.Histogram

	// Upstream API metrics.
	UpstreamRequestDuration *prometheus.HistogramVec // labels: provider={opencage,visualcrossing}
	UpstreamErrors          *prometheus.CounterVec   // labels: provider={opencage,visualcrossing}

	// Report content metrics.
	StormWindowsDetected prometheus.Counter
	AlertsReturned       prometheus.Histogram
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "requests_total",
			Help:      "Report requests by outcome.",
		}, []string{"outcome"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_report",
			Name:      "request_duration_seconds",
			Help:      "End-to-end report assembly duration, geocoding and weather fetch included.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		UpstreamRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weather_report",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"provider"}),
		UpstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "upstream_errors_total",
			Help:      "Upstream API failures by provider.",
		}, []string{"provider"}),
		StormWindowsDetected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "storm_windows_detected_total",
			Help:      "Reports that included a detected storm window.",
		}),
		AlertsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_report",
			Name:      "alerts_returned",
			Help:      "Number of active alerts attached to a report.",
			Buckets:   []float64{0, 1, 2, 3, 5, 10},
		}),
	}

	prometheus.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.UpstreamRequestDuration,
		m.UpstreamErrors,
		m.StormWindowsDetected,
		m.AlertsReturned,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RequestsTotal:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_report", Name: "requests_total"}, []string{"outcome"}),
		RequestDuration:         prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_report", Name: "request_duration_seconds"}),
		UpstreamRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "weather_report", Name: "upstream_request_duration_seconds"}, []string{"provider"}),
		UpstreamErrors:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_report", Name: "upstream_errors_total"}, []string{"provider"}),
		StormWindowsDetected:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_report", Name: "storm_windows_detected_total"}),
		AlertsReturned:          prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_report", Name: "alerts_returned"}),
	}
}
