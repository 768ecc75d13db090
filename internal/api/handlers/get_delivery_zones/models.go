package get_delivery_zones

import "github.com/m04kA/SMC-StoreAvailability/internal/domain"

// DeliveryZonesResponse HTTP response model
type DeliveryZonesResponse struct {
	Zones []DeliveryZone `json:"zones"`
}

// DeliveryZone зона доставки с оценкой времени в минутах
type DeliveryZone struct {
	Postcode         string `json:"postcode"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
}

// FromDomain конвертирует зоны в HTTP response
func FromDomain(zones []*domain.DeliveryZone) *DeliveryZonesResponse {
	out := make([]DeliveryZone, len(zones))
	for i, zone := range zones {
		out[i] = DeliveryZone{
			Postcode:         zone.Postcode,
			EstimatedMinutes: zone.LeadMinutes(),
		}
	}
	return &DeliveryZonesResponse{Zones: out}
}
