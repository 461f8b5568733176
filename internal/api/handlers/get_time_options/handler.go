package get_time_options

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	getTimeOptions "github.com/m04kA/SMC-SchedulerService/internal/usecase/get_time_options"
)

const msgInvalidZone = "некорректный часовой пояс"

type Handler struct {
	useCase GetTimeOptionsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/time-options
// Query params: zone (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	zone, err := handlers.CallerZone(r)
	if err != nil {
		h.logger.Warn("GET /time-options - Invalid zone: %v", err)
		handlers.RespondBadRequest(w, msgInvalidZone)
		return
	}

	result, err := h.useCase.Execute(&getTimeOptions.Request{Zone: zone})
	if err != nil {
		h.logger.Error("GET /time-options - Failed to build time options: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
