package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// scheduled rating pipeline.
type Metrics struct {
	RunsTotal        prometheus.Counter
	RunDuration      prometheus.Histogram
	SchedulerRunning prometheus.Gauge

	// Per-source metrics. Source labels: openmeteo_marine, openmeteo_weather,
	// metservice, webcam.
	FetchFailures *prometheus.CounterVec
	SourceScore   *prometheus.GaugeVec
	OverallScore  prometheus.Gauge

	// Delivery metrics.
	EmailsSent    prometheus.Counter
	EmailFailures prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "spearo",
			Name:      "runs_total",
			Help:      "Total scheduled rating runs executed.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "spearo",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete fetch-rate-send run.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		SchedulerRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "spearo",
			Name:      "scheduler_running",
			Help:      "1 when the scheduling loop is active, 0 when shut down.",
		}),
		FetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spearo",
			Name:      "fetch_failures_total",
			Help:      "Upstream fetches that produced no usable data, by source.",
		}, []string{"source"}),
		SourceScore: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "spearo",
			Name:      "source_score",
			Help:      "Most recent 0-100 suitability score, by source.",
		}, []string{"source"}),
		OverallScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "spearo",
			Name:      "overall_score",
			Help:      "Most recent combined 0-100 suitability score.",
		}),
		EmailsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "spearo",
			Name:      "emails_sent_total",
			Help:      "Total update emails delivered.",
		}),
		EmailFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "spearo",
			Name:      "email_failures_total",
			Help:      "Total update emails that failed to send.",
		}),
	}

	prometheus.MustRegister(
		m.RunsTotal,
		m.RunDuration,
		m.SchedulerRunning,
		m.FetchFailures,
		m.SourceScore,
		m.OverallScore,
		m.EmailsSent,
		m.EmailFailures,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RunsTotal:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "spearo", Name: "runs_total"}),
		RunDuration:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "spearo", Name: "run_duration_seconds"}),
		SchedulerRunning: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "spearo", Name: "scheduler_running"}),
		FetchFailures:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "spearo", Name: "fetch_failures_total"}, []string{"source"}),
		SourceScore:      prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: "spearo", Name: "source_score"}, []string{"source"}),
		OverallScore:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "spearo", Name: "overall_score"}),
		EmailsSent:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "spearo", Name: "emails_sent_total"}),
		EmailFailures:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "spearo", Name: "email_failures_total"}),
	}
}
