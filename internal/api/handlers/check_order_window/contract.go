package check_order_window

import (
	"context"

	checkOrderWindow "github.com/m04kA/SMC-StoreAvailability/internal/usecase/check_order_window"
)

type CheckOrderWindowUseCase interface {
	Execute(ctx context.Context, req *checkOrderWindow.Request) (*checkOrderWindow.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
