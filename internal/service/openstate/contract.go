package openstate

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// OpenStateChecker источник состояния открыт/закрыт (scheduling.Service)
type OpenStateChecker interface {
	IsOpenNow(ctx context.Context) bool
}

// Recorder метрики поллера; nil, если метрики выключены
type Recorder struct {
	StoreOpen prometheus.Gauge
	Refreshes *prometheus.CounterVec
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
