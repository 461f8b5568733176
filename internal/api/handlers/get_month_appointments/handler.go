package get_month_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgInvalidZone   = "некорректный часовой пояс"
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

// Handle GET /api/v1/appointments/month
// Query params: year, month (1-12), customerId, contactId, zone (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	zone, err := handlers.CallerZone(r)
	if err != nil {
		h.logger.Warn("GET /appointments/month - Invalid zone: %v", err)
		handlers.RespondBadRequest(w, msgInvalidZone)
		return
	}

	serviceReq, err := ToServiceRequest(r, zone, time.Now())
	if err != nil {
		h.logger.Warn("GET /appointments/month - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	month, err := h.service.GetMonth(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments/month - Invalid month: %d-%d", serviceReq.Year, int(serviceReq.Month))
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /appointments/month - Failed to get appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/month - Retrieved %d appointments for %04d-%02d",
		len(month.Appointments), month.Year, month.Month)
	handlers.RespondJSON(w, http.StatusOK, month)
}
