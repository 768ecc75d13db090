package get_store_hours

import (
	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
	"github.com/m04kA/SMC-StoreAvailability/pkg/types"
)

// StoreHoursResponse HTTP response model
type StoreHoursResponse struct {
	Days []DayHours `json:"days"`
}

// DayHours часы работы на день недели; время пустое, если не задано
type DayHours struct {
	DayOfWeek string  `json:"dayOfWeek"`
	OpenTime  *string `json:"openTime"`
	CloseTime *string `json:"closeTime"`
	IsClosed  bool    `json:"isClosed"`
}

// FromSchedule конвертирует недельное расписание в HTTP response
func FromSchedule(schedule domain.WeeklySchedule) *StoreHoursResponse {
	entries := schedule.Days()
	days := make([]DayHours, len(entries))
	for i, entry := range entries {
		days[i] = DayHours{
			DayOfWeek: string(entry.Day),
			OpenTime:  formatTime(entry.OpenTime),
			CloseTime: formatTime(entry.CloseTime),
			IsClosed:  !entry.IsOpen(),
		}
	}

	return &StoreHoursResponse{Days: days}
}

func formatTime(t *types.TimeString) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
