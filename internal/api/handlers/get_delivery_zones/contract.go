package get_delivery_zones

import (
	"context"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
)

type ZoneRepository interface {
	GetAllActive(ctx context.Context) ([]*domain.DeliveryZone, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
