package delete_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID встречи"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "встреча не найдена"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /appointments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), appointmentID, actorID); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to delete appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment deleted successfully: appointment_id=%d, user_id=%d",
		appointmentID, actorID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
