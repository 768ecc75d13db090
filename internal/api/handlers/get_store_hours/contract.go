package get_store_hours

import (
	"context"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
)

type HoursService interface {
	GetStoreHours(ctx context.Context) (domain.WeeklySchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
