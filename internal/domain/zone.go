package domain

import "strings"

// DeliveryZone зона доставки по почтовому индексу
type DeliveryZone struct {
	Postcode         string
	EstimatedMinutes int // Ожидаемое время доставки в минутах
	Active           bool
}

// NormalizePostcode приводит индекс к каноничному виду: верхний регистр, без пробелов
func NormalizePostcode(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), ""))
}

// LeadMinutes возвращает минимальный запас времени до слота доставки
func (z *DeliveryZone) LeadMinutes() int {
	if z.EstimatedMinutes < 0 {
		return 0
	}
	return z.EstimatedMinutes
}
