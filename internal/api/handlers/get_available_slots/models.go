package get_available_slots

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-StoreAvailability/internal/usecase/get_available_slots"
)

var errInvalidMode = errors.New("invalid mode")

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date     string   `json:"date"`
	Mode     string   `json:"mode"`
	Postcode string   `json:"postcode,omitempty"`
	Slots    []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Mode:     string(resp.Mode),
		Postcode: resp.Postcode,
		Slots:    slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, modeStr, postcode string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	mode, ok := domain.ParseMode(modeStr)
	if !ok {
		return nil, errInvalidMode
	}

	return &getAvailableSlots.Request{
		Date:     date,
		Mode:     mode,
		Postcode: postcode,
	}, nil
}
