package get_store_status

import "time"

// StoreStatusResponse HTTP response model
// CheckedAt = null, пока поллер не выполнил ни одного обновления
type StoreStatusResponse struct {
	IsOpen    bool    `json:"isOpen"`
	CheckedAt *string `json:"checkedAt"`
}

// FromState конвертирует состояние поллера в HTTP response
func FromState(isOpen bool, checkedAt time.Time) *StoreStatusResponse {
	resp := &StoreStatusResponse{IsOpen: isOpen}
	if !checkedAt.IsZero() {
		formatted := checkedAt.Format(time.RFC3339)
		resp.CheckedAt = &formatted
	}
	return resp
}
