package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics коллекторы метрик сервиса
type Metrics struct {
	registerer prometheus.Registerer

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ValidationsTotal    *prometheus.CounterVec
	ValidationErrors    *prometheus.CounterVec
}

// New создает коллекторы и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает коллекторы и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registerer: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ValidationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointment_validations_total",
			Help:        "Appointment validations by operation and outcome",
			ConstLabels: labels,
		}, []string{"operation", "valid"}),
		ValidationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointment_validation_errors_total",
			Help:        "Appointment validation failures by check",
			ConstLabels: labels,
		}, []string{"check"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ValidationsTotal,
		m.ValidationErrors,
	)

	return m
}

// ObserveHTTP фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordValidation фиксирует результат проверки встречи и провалившиеся проверки.
// На nil *Metrics (метрики выключены) ничего не делает.
func (m *Metrics) RecordValidation(operation string, valid bool, failedChecks []string) {
	if m == nil {
		return
	}
	m.ValidationsTotal.WithLabelValues(operation, strconv.FormatBool(valid)).Inc()
	for _, check := range failedChecks {
		m.ValidationErrors.WithLabelValues(check).Inc()
	}
}

// RegisterDBStats регистрирует сбор статистики пула соединений
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) {
	m.registerer.MustRegister(collectors.NewDBStatsCollector(db, dbName))
}
