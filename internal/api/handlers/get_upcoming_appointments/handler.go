package get_upcoming_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	upcomingAppointments "github.com/m04kA/SMC-SchedulerService/internal/usecase/upcoming_appointments"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidZone   = "некорректный часовой пояс"
)

type Handler struct {
	useCase UpcomingAppointmentsUseCase
	logger  Logger
}

func NewHandler(useCase UpcomingAppointmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/upcoming
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments/upcoming - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	zone, err := handlers.CallerZone(r)
	if err != nil {
		h.logger.Warn("GET /appointments/upcoming - Invalid zone: %v", err)
		handlers.RespondBadRequest(w, msgInvalidZone)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &upcomingAppointments.Request{UserID: userID, Zone: zone})
	if err != nil {
		h.logger.Error("GET /appointments/upcoming - Failed to get appointments: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/upcoming - %d upcoming appointments for user_id=%d",
		len(result.Appointments), userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
