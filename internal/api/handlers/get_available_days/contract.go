package get_available_days

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
)

type DaysService interface {
	GetAvailableDays(ctx context.Context, mode domain.FulfilmentMode, startDate time.Time) ([]time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
