package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge

	StoreOpen          prometheus.Gauge
	OpenStateRefreshes *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer создает метрики в указанном реестре (в тестах - prometheus.NewRegistry())
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	ns := namespace(serviceName)

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "db_query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_open_connections",
			Help:      "Number of established database connections",
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_in_use_connections",
			Help:      "Number of database connections currently in use",
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_idle_connections",
			Help:      "Number of idle database connections",
		}),
		StoreOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "store_open",
			Help:      "1 if the store was open at the last open-state refresh, 0 otherwise",
		}),
		OpenStateRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "open_state_refresh_total",
			Help:      "Open-state refresh attempts by result",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.StoreOpen,
		m.OpenStateRefreshes,
	)

	return m
}

// namespace приводит имя сервиса к допустимому для Prometheus виду
func namespace(serviceName string) string {
	r := strings.NewReplacer("-", "_", ".", "_", " ", "_")
	return strings.ToLower(r.Replace(serviceName))
}
