package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments/models"
	saveAppointment "github.com/m04kA/SMC-SchedulerService/internal/usecase/save_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты и времени, ожидается YYYY-MM-DD HH:MM"
	msgInvalidZone        = "некорректный часовой пояс"
	msgConcurrentUpdate   = "встреча клиента изменена параллельно, повторите запрос"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	useCase SaveAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase SaveAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	zone, err := handlers.CallerZone(r)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid zone: %v", err)
		handlers.RespondBadRequest(w, msgInvalidZone)
		return
	}

	var body handlers.AppointmentBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	candidate, err := body.ToCandidate(0, zone)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &saveAppointment.Request{Request: *candidate, ActorID: actorID})
	if err != nil {
		switch {
		case errors.Is(err, saveAppointment.ErrValidationFailed):
			h.logger.Warn("POST /appointments - Validation failed: user_id=%d, customer_id=%d", actorID, body.CustomerID)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, handlers.FromValidationResult(result.Validation))

		case errors.Is(err, saveAppointment.ErrConcurrentUpdate):
			h.logger.Warn("POST /appointments - Concurrent update: user_id=%d", actorID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentUpdate)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, error=%v", actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, user_id=%d",
		result.Appointment.ID, actorID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainAppointment(result.Appointment, zone))
}
