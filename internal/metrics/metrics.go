// Package metrics holds the prometheus collectors of the dispatch engine.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dispatch"

// Outcome labels.
const (
	OutcomeOK           = "ok"
	OutcomeValidation   = "validation"
	OutcomeNotFound     = "not_found"
	OutcomeConflict     = "conflict"
	OutcomeStoreFailure = "store_failure"
	OutcomeError        = "error"
)

// Metrics owns its registry so tests and multiple servers never collide on
// the global one. All methods are safe on a nil receiver.
type Metrics struct {
	registry *prometheus.Registry

	assignments     *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	outboxPublished *prometheus.CounterVec
	staleDeliveries prometheus.Gauge
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		assignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assignments_total",
			Help:      "Assignment attempts by outcome.",
		}, []string{"result"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_transitions_total",
			Help:      "Applied delivery status transitions by target status.",
		}, []string{"to"}),
		outboxPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_published_total",
			Help:      "Outbox events handed to the publisher by outcome.",
		}, []string{"result"}),
		staleDeliveries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stale_deliveries",
			Help:      "Active deliveries without recent timeline activity at the last report.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.assignments,
		m.transitions,
		m.outboxPublished,
		m.staleDeliveries,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveAssignment(err error) {
	if m == nil {
		return
	}
	m.assignments.WithLabelValues(Outcome(err)).Inc()
}

func (m *Metrics) ObserveTransition(to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(to).Inc()
}

func (m *Metrics) ObserveOutbox(published, failed int) {
	if m == nil {
		return
	}
	m.outboxPublished.WithLabelValues(OutcomeOK).Add(float64(published))
	m.outboxPublished.WithLabelValues(OutcomeError).Add(float64(failed))
}

func (m *Metrics) SetStaleDeliveries(n int) {
	if m == nil {
		return
	}
	m.staleDeliveries.Set(float64(n))
}

// ObserveHTTP records one request. path must be the route pattern, not the
// raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(method, path, code).Inc()
	m.httpDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

// Outcome maps an error to its result label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errs.IsValidation(err):
		return OutcomeValidation
	case errors.Is(err, errs.ErrObjectNotFound):
		return OutcomeNotFound
	case errors.Is(err, errs.ErrConflict):
		return OutcomeConflict
	case errors.Is(err, errs.ErrStoreFailure):
		return OutcomeStoreFailure
	default:
		return OutcomeError
	}
}
