package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
	"github.com/m04kA/SMC-StoreAvailability/pkg/types"
)

// SchedulingService интерфейс движка расписания
type SchedulingService interface {
	GetAvailableTimeSlots(ctx context.Context, day time.Time, mode domain.FulfilmentMode, zone *domain.DeliveryZone) ([]types.TimeString, error)
	HorizonDays() int
}

// ZoneRepository интерфейс репозитория зон доставки
type ZoneRepository interface {
	GetActiveByPostcode(ctx context.Context, postcode string) (*domain.DeliveryZone, error)
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
