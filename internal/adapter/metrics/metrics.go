// Package metrics exposes Prometheus collectors for the HTTP layer, ledger
// operations and economy totals.
package metrics

import (
	"net/http"

	"quizvault/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quizvault"

// Metrics owns a private registry. It implements ports.LedgerMetrics.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	ledgerOps *prometheus.CounterVec

	walletsTotal  prometheus.Gauge
	goldSupply    prometheus.Gauge
	crystalSupply prometheus.Gauge
}

// New registers every collector, plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),

		ledgerOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Ledger operations by outcome (ok or an error code).",
		}, []string{"operation", "outcome"}),

		walletsTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "economy",
			Name:      "wallets",
			Help:      "Number of wallets at the last snapshot.",
		}),
		goldSupply: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "economy",
			Name:      "gold_supply",
			Help:      "Total gold across all wallets at the last snapshot.",
		}),
		crystalSupply: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "economy",
			Name:      "crystal_supply",
			Help:      "Total crystals across all wallets at the last snapshot.",
		}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.ledgerOps,
		m.walletsTotal,
		m.goldSupply,
		m.crystalSupply,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveOperation(operation, outcome string) {
	m.ledgerOps.WithLabelValues(operation, outcome).Inc()
}

// SetEconomyTotals publishes an economy snapshot.
func (m *Metrics) SetEconomyTotals(t ports.WalletTotals) {
	m.walletsTotal.Set(float64(t.Wallets))
	m.goldSupply.Set(float64(t.Gold))
	m.crystalSupply.Set(float64(t.Crystals))
}

// RequestStarted increments the in-flight gauge and returns its decrement.
func (m *Metrics) RequestStarted() func() {
	m.httpInFlight.Inc()
	return m.httpInFlight.Dec
}

// ObserveRequest records a finished request. route is the matched route
// template, never the raw path.
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(seconds)
}
