package get_store_hours

import (
	"net/http"

	"github.com/m04kA/SMC-StoreAvailability/internal/api/handlers"
)

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/store/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.service.GetStoreHours(r.Context())
	if err != nil {
		h.logger.Error("GET /store/hours - Failed to get store hours: %v", err)
		handlers.RespondServiceUnavailable(w)
		return
	}

	response := FromSchedule(schedule)

	h.logger.Info("GET /store/hours - Store hours retrieved successfully: days_count=%d", len(response.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
