// Package metrics exposes storefront counters in the Prometheus format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors of one server instance.
type Metrics struct {
	registry *prometheus.Registry

	Requests       *prometheus.CounterVec
	CartMutations  *prometheus.CounterVec
	WishlistToggle *prometheus.CounterVec
	OrdersPlaced   prometheus.Counter
	OrderRevenue   prometheus.Counter
	ActiveSessions prometheus.Gauge
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "furniro",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "status"}),
		CartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "furniro",
			Name:      "cart_mutations_total",
			Help:      "Cart changes by operation.",
		}, []string{"op"}),
		WishlistToggle: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "furniro",
			Name:      "wishlist_changes_total",
			Help:      "Wishlist changes by operation.",
		}, []string{"op"}),
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "furniro",
			Name:      "orders_placed_total",
			Help:      "Orders placed through checkout.",
		}),
		OrderRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "furniro",
			Name:      "order_revenue_rupiah_total",
			Help:      "Sum of order totals in rupiah.",
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "furniro",
			Name:      "active_sessions",
			Help:      "Client sessions held in memory.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Requests,
		m.CartMutations,
		m.WishlistToggle,
		m.OrdersPlaced,
		m.OrderRevenue,
		m.ActiveSessions,
	)
	return m
}

// Handler serves the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
