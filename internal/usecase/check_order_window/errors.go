package check_order_window

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_order_window: invalid input data")

	// ErrZoneNotFound возвращается, когда для индекса нет активной зоны доставки
	ErrZoneNotFound = errors.New("check_order_window: delivery zone not found")

	// ErrInternal возвращается при внутренних ошибках, в том числе при недоступности настроек магазина
	ErrInternal = errors.New("check_order_window: internal error")
)
