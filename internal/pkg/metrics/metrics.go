// Package metrics owns the service's Prometheus registry and the counters
// the HTTP layer and jobs record into.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "forwarding"

// Quote outcomes used as the result label of the rate quote counter.
const (
	QuoteOK       = "ok"
	QuoteNoZone   = "no_zone"
	QuoteNoRate   = "no_rate"
	QuoteNoSlab   = "no_slab"
	QuoteInvalid  = "invalid"
	QuoteNotFound = "not_found"
	QuoteError    = "error"
)

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RateQuotes        *prometheus.CounterVec
	StatusTransitions *prometheus.CounterVec

	OutboxPublished *prometheus.CounterVec
	RollupRuns      *prometheus.CounterVec
}

// New creates a Metrics with its own registry, so tests can build as many as they need.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	m.RateQuotes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_quotes_total",
			Help:      "Rate quote requests by outcome",
		},
		[]string{"result"},
	)

	m.StatusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_transitions_total",
			Help:      "Successful order status transitions",
		},
		[]string{"from", "to", "actor_type"},
	)

	m.OutboxPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_messages_published_total",
			Help:      "Outbox messages relayed to the broker by outcome",
		},
		[]string{"event_type", "status"},
	)

	m.RollupRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "staff_rollup_runs_total",
			Help:      "Staff activity roll-up runs by outcome",
		},
		[]string{"status"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.RateQuotes,
		m.StatusTransitions,
		m.OutboxPublished,
		m.RollupRuns,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records one request against its route pattern.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordRateQuote(result string) {
	m.RateQuotes.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordStatusTransition(from, to, actorType string) {
	m.StatusTransitions.WithLabelValues(from, to, actorType).Inc()
}

func (m *Metrics) RecordOutboxPublish(eventType string, success bool) {
	m.OutboxPublished.WithLabelValues(eventType, outcome(success)).Inc()
}

func (m *Metrics) RecordRollup(success bool) {
	m.RollupRuns.WithLabelValues(outcome(success)).Inc()
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "error"
}
