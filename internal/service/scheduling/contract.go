package scheduling

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
)

// HoursRepository интерфейс репозитория часов работы и настроек магазина
type HoursRepository interface {
	FetchWeeklySchedule(ctx context.Context) (domain.WeeklySchedule, error)
	FetchSettings(ctx context.Context) (*domain.StoreSettings, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
