package get_available_days

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StoreAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
	"github.com/m04kA/SMC-StoreAvailability/internal/service/scheduling"
)

const (
	msgInvalidMode      = "некорректный способ получения, ожидается pickup или delivery"
	msgInvalidStartDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service DaysService
	logger  Logger
}

func NewHandler(service DaysService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-days
// Query params: mode (pickup|delivery, по умолчанию pickup), startDate (опционально, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	mode, ok := domain.ParseMode(r.URL.Query().Get("mode"))
	if !ok {
		h.logger.Warn("GET /available-days - Invalid mode: %q", r.URL.Query().Get("mode"))
		handlers.RespondBadRequest(w, msgInvalidMode)
		return
	}

	startDate, err := ParseStartDate(r.URL.Query().Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /available-days - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	days, err := h.service.GetAvailableDays(r.Context(), mode, startDate)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrInvalidMode):
			handlers.RespondBadRequest(w, msgInvalidMode)
		case errors.Is(err, scheduling.ErrDataFetch):
			h.logger.Error("GET /available-days - Schedule unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("GET /available-days - Failed to get available days: mode=%s, error=%v", mode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-days - Days retrieved successfully: mode=%s, days_count=%d", mode, len(days))
	handlers.RespondJSON(w, http.StatusOK, FromDays(mode, days))
}
