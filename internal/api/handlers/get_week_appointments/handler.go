package get_week_appointments

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
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

// Handle GET /api/v1/appointments/week
// Query params: date (YYYY-MM-DD), customerId, contactId, zone (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	zone, err := handlers.CallerZone(r)
	if err != nil {
		h.logger.Warn("GET /appointments/week - Invalid zone: %v", err)
		handlers.RespondBadRequest(w, msgInvalidZone)
		return
	}

	serviceReq, err := ToServiceRequest(r, zone, time.Now())
	if err != nil {
		h.logger.Warn("GET /appointments/week - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	week, err := h.service.GetWeek(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /appointments/week - Failed to get appointments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/week - Retrieved %d appointments for week %s", len(week.Appointments), week.Label)
	handlers.RespondJSON(w, http.StatusOK, week)
}
