package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrors      *prometheus.CounterVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	AvailabilityComputations *prometheus.CounterVec
	AvailabilityCache        *prometheus.CounterVec
}

// New создает метрики и регистрирует их в стандартном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests.",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Database query latency.",
				ConstLabels: constLabels,
				Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation"},
		),
		DBQueryErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "db_query_errors_total",
				Help:        "Total number of failed database queries.",
				ConstLabels: constLabels,
			},
			[]string{"operation"},
		),
		DBOpenConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "db_open_connections",
				Help:        "Number of established connections.",
				ConstLabels: constLabels,
			},
			[]string{"db"},
		),
		DBInUseConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "db_in_use_connections",
				Help:        "Number of connections currently in use.",
				ConstLabels: constLabels,
			},
			[]string{"db"},
		),
		DBIdleConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "db_idle_connections",
				Help:        "Number of idle connections.",
				ConstLabels: constLabels,
			},
			[]string{"db"},
		),
		DBWaitCount: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "db_wait_count",
				Help:        "Total number of connections waited for.",
				ConstLabels: constLabels,
			},
			[]string{"db"},
		),
		AvailabilityComputations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "availability_computations_total",
				Help:        "Availability computations by outcome (open, closed, fully_booked).",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
		AvailabilityCache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "availability_cache_requests_total",
				Help:        "Availability cache lookups by result (hit, miss, error).",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.AvailabilityComputations,
		m.AvailabilityCache,
	)

	return m
}

// ObserveAvailability учитывает результат расчета доступности
func (m *Metrics) ObserveAvailability(result string) {
	if m == nil {
		return
	}
	m.AvailabilityComputations.WithLabelValues(result).Inc()
}

// ObserveCache учитывает результат обращения к кэшу доступности
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.AvailabilityCache.WithLabelValues(result).Inc()
}
