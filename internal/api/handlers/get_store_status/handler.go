package get_store_status

import (
	"net/http"

	"github.com/m04kA/SMC-StoreAvailability/internal/api/handlers"
)

type Handler struct {
	state  OpenState
	logger Logger
}

func NewHandler(state OpenState, logger Logger) *Handler {
	return &Handler{
		state:  state,
		logger: logger,
	}
}

// Handle GET /api/v1/store/status
// Отдает закешированное поллером значение, расписание не читается
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	response := FromState(h.state.IsOpen(), h.state.LastChecked())

	if response.CheckedAt == nil {
		h.logger.Warn("GET /store/status - Open state has not been refreshed yet, reporting closed")
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
