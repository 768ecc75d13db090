package scheduling

import "errors"

var (
	// ErrDataFetch возвращается, когда не удалось прочитать расписание или настройки
	// Повторных попыток нет, решение о сообщении пользователю принимает вызывающий
	ErrDataFetch = errors.New("scheduling: failed to fetch store data")

	// ErrInvalidMode возвращается при неизвестном способе получения заказа
	ErrInvalidMode = errors.New("scheduling: invalid fulfilment mode")

	// ErrZoneRequired возвращается, когда для доставки не передана зона
	ErrZoneRequired = errors.New("scheduling: delivery zone is required")

	// ErrZoneInactive возвращается, когда зона доставки отключена
	ErrZoneInactive = errors.New("scheduling: delivery zone is inactive")
)
