package get_store_settings

import (
	"net/http"

	"github.com/m04kA/SMC-StoreAvailability/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/store/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetStoreSettings(r.Context())
	if err != nil {
		h.logger.Error("GET /store/settings - Failed to get store settings: %v", err)
		handlers.RespondServiceUnavailable(w)
		return
	}

	h.logger.Info("GET /store/settings - Store settings retrieved successfully: store=%q", settings.StoreName)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(settings))
}
