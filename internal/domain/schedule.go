package domain

import (
	"sort"

	"github.com/m04kA/SMC-StoreAvailability/pkg/types"
)

// DaySchedule расписание работы на один день недели
// Часы через полночь (например 22:00-02:00) не поддерживаются
type DaySchedule struct {
	IsClosed  bool
	OpenTime  *types.TimeString
	CloseTime *types.TimeString
}

// IsOpen возвращает true, если в этот день есть рабочие часы
// Запись без времени или с открытием не раньше закрытия считается закрытым днем
func (d *DaySchedule) IsOpen() bool {
	if d == nil || d.IsClosed || d.OpenTime == nil || d.CloseTime == nil {
		return false
	}
	return d.OpenTime.IsBefore(*d.CloseTime)
}

// WeeklySchedule расписание работы на неделю
// Отсутствующий день трактуется как закрытый
type WeeklySchedule map[Weekday]DaySchedule

// ForDay возвращает расписание на день недели; ok = false, если день отсутствует
func (s WeeklySchedule) ForDay(day Weekday) (DaySchedule, bool) {
	entry, ok := s[day]
	return entry, ok
}

// IsComplete возвращает true, если в расписании есть все семь дней
func (s WeeklySchedule) IsComplete() bool {
	for _, day := range AllWeekdays {
		if _, ok := s[day]; !ok {
			return false
		}
	}
	return true
}

// ScheduleEntry день недели вместе с его расписанием
type ScheduleEntry struct {
	Day Weekday
	DaySchedule
}

// Days возвращает записи расписания в календарном порядке
func (s WeeklySchedule) Days() []ScheduleEntry {
	entries := make([]ScheduleEntry, 0, len(s))
	for day, schedule := range s {
		entries = append(entries, ScheduleEntry{Day: day, DaySchedule: schedule})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Day.Order() < entries[j].Day.Order()
	})
	return entries
}
