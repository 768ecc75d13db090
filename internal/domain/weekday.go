package domain

import (
	"strings"
	"time"
)

// Weekday название дня недели в том виде, в котором оно хранится в store_hours.day_of_week
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// AllWeekdays дни недели в календарном порядке (воскресенье первое, как в time.Weekday)
var AllWeekdays = []Weekday{
	Sunday,
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
}

var weekdayByGo = map[time.Weekday]Weekday{
	time.Sunday:    Sunday,
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
}

// ParseWeekday нормализует название дня (регистр, пробелы) и проверяет,
// что оно входит в каноничный набор из семи дней
func ParseWeekday(raw string) (Weekday, bool) {
	day := Weekday(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := day.index(); !ok {
		return "", false
	}
	return day, true
}

// WeekdayOf возвращает день недели для момента времени
func WeekdayOf(t time.Time) Weekday {
	return weekdayByGo[t.Weekday()]
}

// Order возвращает позицию дня в календарном порядке (0 - воскресенье), -1 для неизвестного дня
func (w Weekday) Order() int {
	idx, ok := w.index()
	if !ok {
		return -1
	}
	return idx
}

func (w Weekday) index() (int, bool) {
	for i, day := range AllWeekdays {
		if day == w {
			return i, true
		}
	}
	return 0, false
}
