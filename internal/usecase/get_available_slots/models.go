package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
	"github.com/m04kA/SMC-StoreAvailability/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date     time.Time             // Дата для получения слотов (без времени)
	Mode     domain.FulfilmentMode // Самовывоз или доставка
	Postcode string                // Индекс доставки, обязателен для доставки
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date     time.Time
	Mode     domain.FulfilmentMode
	Postcode string             // Нормализованный индекс (только для доставки)
	Slots    []types.TimeString // Слоты HH:MM по возрастанию
}
