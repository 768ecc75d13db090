package check_order_window

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StoreAvailability/internal/api/handlers"
	checkOrderWindow "github.com/m04kA/SMC-StoreAvailability/internal/usecase/check_order_window"
)

const (
	msgMissingParams = "параметры date и time обязательны"
	msgInvalidParams = "некорректные параметры запроса"
	msgZoneNotFound  = "доставка по указанному индексу не осуществляется"
)

type Handler struct {
	useCase CheckOrderWindowUseCase
	logger  Logger
}

func NewHandler(useCase CheckOrderWindowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/order-window
// Query params: date (YYYY-MM-DD), time (HH:MM), mode (pickup|delivery), postcode (для доставки)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr, timeStr := query.Get("date"), query.Get("time")
	if dateStr == "" || timeStr == "" {
		h.logger.Warn("GET /order-window - Missing date or time")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, timeStr, query.Get("mode"), query.Get("postcode"))
	if err != nil {
		h.logger.Warn("GET /order-window - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkOrderWindow.ErrInvalidInput):
			h.logger.Warn("GET /order-window - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, checkOrderWindow.ErrZoneNotFound):
			h.logger.Warn("GET /order-window - Zone not found: postcode=%q", useCaseReq.Postcode)
			handlers.RespondNotFound(w, msgZoneNotFound)

		default:
			h.logger.Error("GET /order-window - Failed to check order window: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /order-window - Checked: mode=%s, date=%s, time=%s, allowed=%t, reason=%q",
		useCaseReq.Mode, dateStr, useCaseReq.Time, result.Allowed, result.Reason)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
