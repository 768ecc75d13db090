package check_order_window

import (
	"time"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
	"github.com/m04kA/SMC-StoreAvailability/pkg/types"
)

// Причины отказа
const (
	ReasonStoreClosed     = "store_closed"
	ReasonSlotUnavailable = "slot_unavailable"
)

// Request модель запроса проверки окна заказа
type Request struct {
	Mode     domain.FulfilmentMode
	Date     time.Time
	Time     *types.TimeString
	Postcode string
}

// Response результат проверки
type Response struct {
	Allowed    bool
	Reason     string // Пусто, если заказ разрешен
	IsPreorder bool   // Заказ разрешен, но магазин сейчас закрыт
}
