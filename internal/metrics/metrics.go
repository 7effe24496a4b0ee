// Package metrics exposes request and calculation counters for Prometheus.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	Calculations *prometheus.CounterVec
	CardViews    prometheus.Counter
	Requests     *prometheus.CounterVec
}

// New creates counters on a private registry so tests and multiple servers
// do not collide.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "timeworth_calculations_total",
			Help: "Pay calculations by whether the input was accepted.",
		}, []string{"valid"}),
		CardViews: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timeworth_card_views_total",
			Help: "Share card renders.",
		}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "timeworth_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"path", "code"}),
	}
	reg.MustRegister(m.Calculations, m.CardViews, m.Requests)
	return m
}

// ObserveCalculation counts one calculation.
func (m *Metrics) ObserveCalculation(valid bool) {
	m.Calculations.WithLabelValues(strconv.FormatBool(valid)).Inc()
}

func (m *Metrics) ObserveRequest(path string, code int) {
	m.Requests.WithLabelValues(path, strconv.Itoa(code)).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
