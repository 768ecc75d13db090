package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidDate возвращается, когда дата в прошлом или доставка запрошена не на сегодня
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами горизонта самовывоза
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrZoneNotFound возвращается, когда для индекса нет активной зоны доставки
	ErrZoneNotFound = errors.New("get_available_slots: delivery zone not found")

	// ErrScheduleUnavailable возвращается, когда не удалось прочитать расписание
	ErrScheduleUnavailable = errors.New("get_available_slots: store schedule is unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
