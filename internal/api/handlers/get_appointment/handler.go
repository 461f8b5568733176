package get_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID встречи"
	msgInvalidZone          = "некорректный часовой пояс"
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

// Handle GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("GET /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	zone, err := handlers.CallerZone(r)
	if err != nil {
		h.logger.Warn("GET /appointments/{id} - Invalid zone: %v", err)
		handlers.RespondBadRequest(w, msgInvalidZone)
		return
	}

	appointment, err := h.service.GetByID(r.Context(), appointmentID, zone)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /appointments/{id} - Failed to get appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{id} - Appointment retrieved successfully: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
