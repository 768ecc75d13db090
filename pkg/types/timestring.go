package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	minutesPerDay = 24 * 60
	layoutHHMM    = "15:04"
	layoutHHMMSS  = "15:04:05"
)

var (
	// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time is out of day range")
)

// TimeString время суток с точностью до минуты (00:00 - 23:59)
// Не содержит даты и часового пояса, привязывается к дате через On
type TimeString struct {
	minutes int
}

// NewTimeString создает TimeString из time.Time, секунды отбрасываются
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute()}
}

// NewTimeStringFromMinutes создает TimeString из количества минут от начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString{minutes: minutes}, nil
}

// NewTimeStringFromString парсит строку "HH:MM"
// Формат "HH:MM:SS" тоже принимается (так Postgres отдает колонку TIME), секунды отбрасываются
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)

	layout := layoutHHMM
	if strings.Count(s, ":") == 2 {
		layout = layoutHHMMSS
	}

	parsed, err := time.Parse(layout, s)
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return NewTimeString(parsed), nil
}

// MustTimeString как NewTimeStringFromString, но паникует при ошибке
// Используется для констант и в тестах
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// Hour возвращает час (0-23)
func (t TimeString) Hour() int {
	return t.minutes / 60
}

// Minute возвращает минуты внутри часа (0-59)
func (t TimeString) Minute() int {
	return t.minutes % 60
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() int {
	return t.minutes
}

// AddMinutes возвращает время, сдвинутое на n минут
// Переход через полночь считается ошибкой
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	return NewTimeStringFromMinutes(t.minutes + n)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// Equal возвращает true, если время совпадает
func (t TimeString) Equal(other TimeString) bool {
	return t.minutes == other.minutes
}

// On возвращает момент времени t в календарный день date (в часовом поясе date)
func (t TimeString) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, date.Location())
}

// String возвращает время в формате HH:MM
func (t TimeString) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalJSON сериализует время строкой "HH:MM"
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON разбирает строку "HH:MM"
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer для записи в колонку TIME
func (t TimeString) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan реализует sql.Scanner для чтения колонки TIME
// NULL нужно сканировать в *TimeString (указатель), иначе вернется ошибка
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		return fmt.Errorf("%w: NULL value", ErrInvalidTimeFormat)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, src)
	}
	return nil
}
