package domain

import "strings"

// FulfilmentMode способ получения заказа
type FulfilmentMode string

const (
	ModePickup   FulfilmentMode = "pickup"
	ModeDelivery FulfilmentMode = "delivery"
)

// ParseMode разбирает способ получения; пустая строка означает самовывоз
func ParseMode(raw string) (FulfilmentMode, bool) {
	switch mode := FulfilmentMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "":
		return ModePickup, true
	case ModePickup, ModeDelivery:
		return mode, true
	default:
		return "", false
	}
}

// IsValid проверяет, что значение входит в перечисление
func (m FulfilmentMode) IsValid() bool {
	return m == ModePickup || m == ModeDelivery
}
