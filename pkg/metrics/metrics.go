package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	bookingsActive      prometheus.Gauge
	bookingsTotal       *prometheus.CounterVec
}

// New регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency in seconds.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),
		bookingsActive: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "bookings_active",
			Help:        "Number of bookings currently held in the store.",
			ConstLabels: constLabels,
		}),
		bookingsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_operations_total",
			Help:        "Booking operations by outcome.",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),
	}
}

// RecordHTTPRequest записывает счётчик и латентность HTTP запроса
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// SetActiveBookings выставляет gauge текущего числа бронирований
func (m *Metrics) SetActiveBookings(n int) {
	m.bookingsActive.Set(float64(n))
}

// RecordBookingOperation записывает исход операции store (created, rejected, cancelled...)
func (m *Metrics) RecordBookingOperation(operation, outcome string) {
	m.bookingsTotal.WithLabelValues(operation, outcome).Inc()
}
