package get_available_days

import (
	"time"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
)

// AvailableDaysResponse HTTP response model
type AvailableDaysResponse struct {
	Mode string   `json:"mode"`
	Days []string `json:"days"`
}

// FromDays конвертирует список дней в HTTP response
func FromDays(mode domain.FulfilmentMode, days []time.Time) *AvailableDaysResponse {
	formatted := make([]string, len(days))
	for i, day := range days {
		formatted[i] = day.Format(domain.DateFormat)
	}

	return &AvailableDaysResponse{
		Mode: string(mode),
		Days: formatted,
	}
}

// ParseStartDate разбирает необязательный параметр startDate; пустая строка дает нулевое время
func ParseStartDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(domain.DateFormat, raw)
}
