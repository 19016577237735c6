package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллектор метрик исходящих запросов к backend API
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New создает коллектор с собственным registry
// serviceName попадает в constant label, чтобы различать клиентов в одном процессе
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "serenio_client_requests_total",
			Help:        "Total number of requests issued to the Serenio backend",
			ConstLabels: prometheus.Labels{"service": serviceName},
		},
		[]string{"endpoint", "outcome"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "serenio_client_request_duration_seconds",
			Help:        "Duration of requests to the Serenio backend",
			ConstLabels: prometheus.Labels{"service": serviceName},
			Buckets:     prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	registry.MustRegister(requestsTotal, requestDuration)

	return &Metrics{
		registry:        registry,
		requestsTotal:   requestsTotal,
		requestDuration: requestDuration,
	}
}

// ObserveRequest фиксирует завершенный запрос
// outcome: "success" либо каноническое имя ошибки из таксономии клиента
func (m *Metrics) ObserveRequest(endpoint, outcome string, duration time.Duration) {
	m.requestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// Registry возвращает registry для экспорта метрик встраивающим приложением
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
