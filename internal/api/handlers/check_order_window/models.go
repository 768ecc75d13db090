package check_order_window

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
	checkOrderWindow "github.com/m04kA/SMC-StoreAvailability/internal/usecase/check_order_window"
	"github.com/m04kA/SMC-StoreAvailability/pkg/types"
)

// OrderWindowResponse HTTP response model
type OrderWindowResponse struct {
	Allowed    bool   `json:"allowed"`
	Reason     string `json:"reason,omitempty"`
	IsPreorder bool   `json:"isPreorder"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkOrderWindow.Response) *OrderWindowResponse {
	return &OrderWindowResponse{
		Allowed:    resp.Allowed,
		Reason:     resp.Reason,
		IsPreorder: resp.IsPreorder,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, timeStr, modeStr, postcode string) (*checkOrderWindow.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	slot, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, fmt.Errorf("time: %w", err)
	}

	mode, ok := domain.ParseMode(modeStr)
	if !ok {
		return nil, fmt.Errorf("mode: unknown value %q", modeStr)
	}

	return &checkOrderWindow.Request{
		Mode:     mode,
		Date:     date,
		Time:     &slot,
		Postcode: postcode,
	}, nil
}
