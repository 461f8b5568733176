package update_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments/models"
	saveAppointment "github.com/m04kA/SMC-SchedulerService/internal/usecase/save_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID встречи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateTime      = "некорректный формат даты и времени, ожидается YYYY-MM-DD HH:MM"
	msgInvalidZone          = "некорректный часовой пояс"
	msgConcurrentUpdate     = "встреча клиента изменена параллельно, повторите запрос"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "встреча не найдена"
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

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /appointments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	zone, err := handlers.CallerZone(r)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid zone: %v", err)
		handlers.RespondBadRequest(w, msgInvalidZone)
		return
	}

	var body handlers.AppointmentBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	candidate, err := body.ToCandidate(appointmentID, zone)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &saveAppointment.Request{Request: *candidate, ActorID: actorID})
	if err != nil {
		switch {
		case errors.Is(err, saveAppointment.ErrValidationFailed):
			h.logger.Warn("PUT /appointments/{id} - Validation failed: appointment_id=%d", appointmentID)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, handlers.FromValidationResult(result.Validation))

		case errors.Is(err, saveAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, saveAppointment.ErrConcurrentUpdate):
			h.logger.Warn("PUT /appointments/{id} - Concurrent update: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentUpdate)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Appointment updated successfully: appointment_id=%d, user_id=%d",
		appointmentID, actorID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAppointment(result.Appointment, zone))
}
