package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTPRequestsTotal количество обработанных HTTP запросов
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration длительность обработки HTTP запросов
	HTTPRequestDuration *prometheus.HistogramVec

	// UpstreamRequestsTotal количество вызовов внешних провайдеров
	UpstreamRequestsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		UpstreamRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "upstream_requests_total",
				Help:        "Total number of upstream provider calls",
				ConstLabels: constLabels,
			},
			[]string{"provider", "method", "outcome"},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.UpstreamRequestsTotal,
	)

	return m
}

// ObserveUpstream фиксирует результат вызова внешнего провайдера
// outcome: "ok" | "rejected" | "transport_error"
func (m *Metrics) ObserveUpstream(provider, method, outcome string) {
	if m == nil {
		return
	}
	m.UpstreamRequestsTotal.WithLabelValues(provider, method, outcome).Inc()
}
