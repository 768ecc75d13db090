package check_order_window

import (
	"context"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-StoreAvailability/internal/usecase/get_available_slots"
)

// StoreService интерфейс сервиса расписания (настройки и текущее состояние магазина)
type StoreService interface {
	GetStoreSettings(ctx context.Context) (*domain.StoreSettings, error)
	IsOpenNow(ctx context.Context) bool
}

// SlotsUseCase интерфейс use case получения доступных слотов
type SlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
