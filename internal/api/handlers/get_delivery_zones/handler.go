package get_delivery_zones

import (
	"net/http"

	"github.com/m04kA/SMC-StoreAvailability/internal/api/handlers"
)

type Handler struct {
	repo   ZoneRepository
	logger Logger
}

func NewHandler(repo ZoneRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle GET /api/v1/delivery-zones
// Возвращает только активные зоны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	zones, err := h.repo.GetAllActive(r.Context())
	if err != nil {
		h.logger.Error("GET /delivery-zones - Failed to get zones: %v", err)
		handlers.RespondServiceUnavailable(w)
		return
	}

	h.logger.Info("GET /delivery-zones - Zones retrieved successfully: zones_count=%d", len(zones))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(zones))
}
