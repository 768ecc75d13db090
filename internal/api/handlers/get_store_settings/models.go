package get_store_settings

import "github.com/m04kA/SMC-StoreAvailability/internal/domain"

// StoreSettingsResponse HTTP response model
type StoreSettingsResponse struct {
	StoreName       string `json:"storeName"`
	Address         string `json:"address"`
	AcceptPreorders bool   `json:"acceptPreorders"`
}

// FromDomain конвертирует настройки магазина в HTTP response
func FromDomain(settings *domain.StoreSettings) *StoreSettingsResponse {
	return &StoreSettingsResponse{
		StoreName:       settings.StoreName,
		Address:         settings.Address,
		AcceptPreorders: settings.AcceptPreorders,
	}
}
