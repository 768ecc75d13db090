package get_store_settings

import (
	"context"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
)

type SettingsService interface {
	GetStoreSettings(ctx context.Context) (*domain.StoreSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
