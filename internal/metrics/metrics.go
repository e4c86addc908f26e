// Package metrics provides the Prometheus metrics of the HTTP API.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec   // requests by endpoint and status code
	RequestDuration  *prometheus.HistogramVec // latency by endpoint
	GenerationsTotal *prometheus.CounterVec   // generated tables by tense and outcome
	CacheHitsTotal   *prometheus.CounterVec   // response cache hits by endpoint
	RateLimitedTotal prometheus.Counter       // requests rejected by the rate limiter

	registry *prometheus.Registry
}

// Outcome labels for GenerationsTotal.
const (
	OutcomeOK         = "ok"
	OutcomeDiagnostic = "diagnostic"
)

// New creates the collectors and registers them on registry.
func New(registry *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register grieks metrics: %w", err)
	}
	return m, nil
}

func (m *Metrics) initMetrics() {
	m.RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grieks_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status code",
		},
		[]string{"endpoint", "status"},
	)
	m.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grieks_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests by endpoint",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"endpoint"},
	)
	m.GenerationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grieks_generations_total",
			Help: "Total number of conjugations and imperatives served, cached or not, by tense and outcome",
		},
		[]string{"tense", "outcome"}, // outcome: ok, diagnostic
	)
	m.CacheHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grieks_cache_hits_total",
			Help: "Total number of responses served from the response cache by endpoint",
		},
		[]string{"endpoint"},
	)
	m.RateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "grieks_http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.RequestsTotal.Describe(ch)
	m.RequestDuration.Describe(ch)
	m.GenerationsTotal.Describe(ch)
	m.CacheHitsTotal.Describe(ch)
	m.RateLimitedTotal.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.RequestsTotal.Collect(ch)
	m.RequestDuration.Collect(ch)
	m.GenerationsTotal.Collect(ch)
	m.CacheHitsTotal.Collect(ch)
	m.RateLimitedTotal.Collect(ch)
}

// Registry returns the registry the metrics were registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(endpoint string, status int, d time.Duration) {
	m.RequestsTotal.WithLabelValues(endpoint, fmt.Sprint(status)).Inc()
	m.RequestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// ObserveGeneration records one generation result.
func (m *Metrics) ObserveGeneration(tense string, ok bool) {
	outcome := OutcomeOK
	if !ok {
		outcome = OutcomeDiagnostic
	}
	m.GenerationsTotal.WithLabelValues(tense, outcome).Inc()
}
