package scheduling

import (
	"time"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
)

// IsOpenAt проверяет, открыт ли магазин в момент now
// Границы строгие: ровно в момент открытия и ровно в момент закрытия магазин закрыт
func IsOpenAt(schedule domain.WeeklySchedule, now time.Time) bool {
	entry, ok := schedule.ForDay(domain.WeekdayOf(now))
	if !ok || entry.IsClosed || entry.OpenTime == nil || entry.CloseTime == nil {
		return false
	}

	openAt := entry.OpenTime.On(now)
	closeAt := entry.CloseTime.On(now)

	return openAt.Before(now) && now.Before(closeAt)
}
