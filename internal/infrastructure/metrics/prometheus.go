package metrics

import (
	"net/http"

	"smartorders/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SyncMetrics counts order synchronizer requests by kind and outcome on its
// own registry.
type SyncMetrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

var _ interfaces.ISyncMetrics = (*SyncMetrics)(nil)

func NewSyncMetrics() *SyncMetrics {
	reg := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartorders",
		Subsystem: "sync",
		Name:      "requests_total",
		Help:      "Order synchronizer requests by kind and outcome.",
	}, []string{"kind", "outcome"})

	reg.MustRegister(
		requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &SyncMetrics{registry: reg, requests: requests}
}

func (m *SyncMetrics) ObserveRequest(kind, outcome string) {
	m.requests.WithLabelValues(kind, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *SyncMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *SyncMetrics) Registry() *prometheus.Registry {
	return m.registry
}
