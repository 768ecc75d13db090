package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StoreAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-StoreAvailability/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidMode      = "некорректный способ получения, ожидается pickup или delivery"
	msgInvalidParams    = "некорректные параметры запроса"
	msgDateNotAvailable = "на выбранную дату заказ недоступен"
	msgDateTooFar       = "выбранная дата слишком далеко в будущем"
	msgZoneNotFound     = "доставка по указанному индексу не осуществляется"
	msgMissingPostcode  = "индекс обязателен для доставки"
)

const (
	queryParamDate     = "date"
	queryParamMode     = "mode"
	queryParamPostcode = "postcode"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD), mode (pickup|delivery), postcode (required for delivery)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get(queryParamDate)
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты и способа получения)
	useCaseReq, err := ToUseCaseRequest(dateStr, query.Get(queryParamMode), query.Get(queryParamPostcode))
	if err != nil {
		if errors.Is(err, errInvalidMode) {
			h.logger.Warn("GET /available-slots - Invalid mode: %q", query.Get(queryParamMode))
			handlers.RespondBadRequest(w, msgInvalidMode)
			return
		}
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if useCaseReq.Mode == domain.ModeDelivery && useCaseReq.Postcode == "" {
		h.logger.Warn("GET /available-slots - Missing postcode for delivery")
		handlers.RespondBadRequest(w, msgMissingPostcode)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateNotAvailable)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrZoneNotFound):
			h.logger.Warn("GET /available-slots - Zone not found: postcode=%q", useCaseReq.Postcode)
			handlers.RespondNotFound(w, msgZoneNotFound)

		case errors.Is(err, getAvailableSlots.ErrScheduleUnavailable):
			h.logger.Error("GET /available-slots - Schedule unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: mode=%s, date=%s, error=%v",
				useCaseReq.Mode, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-slots - Slots retrieved successfully: mode=%s, date=%s, slots_count=%d",
		result.Mode, response.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
