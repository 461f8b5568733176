package get_reports

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments/models"
)

const (
	msgInvalidZone   = "некорректный часовой пояс"
	msgInvalidParams = "требуется ровно один из параметров contactId или userId"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleTypes GET /api/v1/reports/types
func (h *Handler) HandleTypes(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.ReportByType(r.Context())
	if err != nil {
		h.logger.Error("GET /reports/types - Failed to build report: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// HandleMonths GET /api/v1/reports/months
// Query params: zone (опционально)
func (h *Handler) HandleMonths(w http.ResponseWriter, r *http.Request) {
	zone, err := handlers.CallerZone(r)
	if err != nil {
		h.logger.Warn("GET /reports/months - Invalid zone: %v", err)
		handlers.RespondBadRequest(w, msgInvalidZone)
		return
	}

	report, err := h.service.ReportByMonth(r.Context(), zone)
	if err != nil {
		h.logger.Error("GET /reports/months - Failed to build report: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// HandleSchedule GET /api/v1/reports/schedule
// Query params: contactId или userId, zone (опционально)
func (h *Handler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	zone, err := handlers.CallerZone(r)
	if err != nil {
		h.logger.Warn("GET /reports/schedule - Invalid zone: %v", err)
		handlers.RespondBadRequest(w, msgInvalidZone)
		return
	}

	contactID, err := handlers.QueryID(r, "contactId")
	if err != nil {
		h.logger.Warn("GET /reports/schedule - Invalid contactId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	userID, err := handlers.QueryID(r, "userId")
	if err != nil {
		h.logger.Warn("GET /reports/schedule - Invalid userId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	schedule, err := h.service.Schedule(r.Context(), &models.ScheduleRequest{
		ContactID: contactID,
		UserID:    userID,
		Zone:      zone,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /reports/schedule - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /reports/schedule - Failed to build schedule: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, schedule)
}
