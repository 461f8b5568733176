package validate_appointment

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты и времени, ожидается YYYY-MM-DD HH:MM"
	msgInvalidZone        = "некорректный часовой пояс"
)

type Handler struct {
	useCase ValidateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ValidateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/validate
// Query params: id (редактируемая встреча, опционально), zone (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	zone, err := handlers.CallerZone(r)
	if err != nil {
		h.logger.Warn("POST /appointments/validate - Invalid zone: %v", err)
		handlers.RespondBadRequest(w, msgInvalidZone)
		return
	}

	excludeID, err := handlers.QueryID(r, "id")
	if err != nil {
		h.logger.Warn("POST /appointments/validate - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var body handlers.AppointmentBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /appointments/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var id int64
	if excludeID != nil {
		id = *excludeID
	}

	candidate, err := body.ToCandidate(id, zone)
	if err != nil {
		h.logger.Warn("POST /appointments/validate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), candidate)
	if err != nil {
		h.logger.Error("POST /appointments/validate - Failed to validate appointment: customer_id=%d, error=%v",
			body.CustomerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /appointments/validate - Validated: customer_id=%d, valid=%t", body.CustomerID, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromValidationResult(result))
}
