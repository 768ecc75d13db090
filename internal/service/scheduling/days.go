package scheduling

import (
	"time"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
)

// AvailableDays возвращает дни в окне [startDate, startDate+horizonDays), в которые принимаются заказы
// Время суток startDate отбрасывается. Остаток рабочего времени в текущем дне не проверяется:
// день может попасть в список и при этом не дать ни одного слота.
// Запись без времени или с закрытием не позже открытия считается закрытым днем
func AvailableDays(schedule domain.WeeklySchedule, startDate time.Time, horizonDays int) []time.Time {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}

	start := startOfDay(startDate)
	days := make([]time.Time, 0, horizonDays)

	for i := 0; i < horizonDays; i++ {
		day := start.AddDate(0, 0, i)

		entry, ok := schedule.ForDay(domain.WeekdayOf(day))
		if !ok || !entry.IsOpen() {
			continue
		}

		days = append(days, day)
	}

	return days
}

// startOfDay обнуляет время суток, часовой пояс сохраняется
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// dateIn переносит календарную дату date в часовой пояс loc без пересчета времени
func dateIn(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
