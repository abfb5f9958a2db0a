// Package metrics Prometheus-метрики сервиса
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUseConns      *prometheus.GaugeVec
	DBIdleConns       *prometheus.GaugeVec

	CatalogSize      *prometheus.GaugeVec
	ScheduleResults  *prometheus.HistogramVec
	CatalogFetchErrs *prometheus.CounterVec
}

// New создает коллекторы и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает коллекторы и регистрирует их в указанном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		CatalogSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "catalog_activities",
			Help:        "Number of activities in the last loaded catalog snapshot",
			ConstLabels: constLabels,
		}, []string{"source"}),

		ScheduleResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "schedule_result_size",
			Help:        "Number of items returned by catalog filtering operations",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		}, []string{"operation"}),

		CatalogFetchErrs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "catalog_fetch_errors_total",
			Help:        "Total number of failed catalog loads",
			ConstLabels: constLabels,
		}, []string{"source"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUseConns,
		m.DBIdleConns,
		m.CatalogSize,
		m.ScheduleResults,
		m.CatalogFetchErrs,
	)

	return m
}

// ObserveResultSize записывает размер результата операции фильтрации
func (m *Metrics) ObserveResultSize(operation string, size int) {
	if m == nil {
		return
	}
	m.ScheduleResults.WithLabelValues(operation).Observe(float64(size))
}

// SetCatalogSize обновляет размер последнего загруженного каталога
func (m *Metrics) SetCatalogSize(source string, size int) {
	if m == nil {
		return
	}
	m.CatalogSize.WithLabelValues(source).Set(float64(size))
}

// IncCatalogFetchError увеличивает счётчик ошибок загрузки каталога
func (m *Metrics) IncCatalogFetchError(source string) {
	if m == nil {
		return
	}
	m.CatalogFetchErrs.WithLabelValues(source).Inc()
}
