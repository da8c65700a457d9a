// Package metrics exposes resolver counters through a private Prometheus
// registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/xform/internal/core/ports"
)

const namespace = "xform"

// Resolver implements ports.ResolverMetrics.
type Resolver struct {
	registry      *prometheus.Registry
	lookups       *prometheus.CounterVec
	evaluations   prometheus.Counter
	invalidations prometheus.Counter
	failures      *prometheus.CounterVec
}

var _ ports.ResolverMetrics = (*Resolver)(nil)

// NewResolver creates the resolver counters and registers them on a fresh
// registry.
func NewResolver() *Resolver {
	m := &Resolver{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "resolver",
				Name:      "cache_lookups_total",
				Help:      "Count of transform cache lookups by result (hit/miss)",
			},
			[]string{"result"},
		),
		evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "evaluations_total",
			Help:      "Count of evaluated transform expression nodes",
		}),
		invalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "invalidations_total",
			Help:      "Count of cache entries dropped after property changes",
		}),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "resolver",
				Name:      "failures_total",
				Help:      "Count of failed resolves by outcome (error/fallback)",
			},
			[]string{"outcome"},
		),
	}
	m.registry.MustRegister(m.lookups, m.evaluations, m.invalidations, m.failures)
	return m
}

// Registry returns the registry holding the resolver counters.
func (m *Resolver) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Resolver) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// CacheHit increments the cache hit counter.
func (m *Resolver) CacheHit() {
	m.lookups.WithLabelValues("hit").Inc()
}

// CacheMiss increments the cache miss counter.
func (m *Resolver) CacheMiss() {
	m.lookups.WithLabelValues("miss").Inc()
}

// Evaluation increments the evaluation counter.
func (m *Resolver) Evaluation() {
	m.evaluations.Inc()
}

// Invalidation adds n dropped cache entries.
func (m *Resolver) Invalidation(n int) {
	if n > 0 {
		m.invalidations.Add(float64(n))
	}
}

// Failure increments the error outcome counter.
func (m *Resolver) Failure() {
	m.failures.WithLabelValues("error").Inc()
}

// Fallback increments the fallback outcome counter.
func (m *Resolver) Fallback() {
	m.failures.WithLabelValues("fallback").Inc()
}
