package get_upcoming_appointments

import (
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments/models"
	upcomingAppointments "github.com/m04kA/SMC-SchedulerService/internal/usecase/upcoming_appointments"
)

// UpcomingAppointment HTTP модель ближайшей встречи
type UpcomingAppointment struct {
	models.AppointmentResponse
	MinutesUntil int64 `json:"minutesUntil"`
}

// UpcomingResponse HTTP response model
type UpcomingResponse struct {
	Now          string                `json:"now"` // "2024-03-04 09:00"
	LeadMinutes  int                   `json:"leadMinutes"`
	Appointments []UpcomingAppointment `json:"appointments"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *upcomingAppointments.Response) *UpcomingResponse {
	zone := resp.Now.Location()
	out := &UpcomingResponse{
		Now:          resp.Now.Format(domain.DateTimeFormat),
		LeadMinutes:  resp.LeadMinutes,
		Appointments: make([]UpcomingAppointment, 0, len(resp.Appointments)),
	}

	for _, u := range resp.Appointments {
		out.Appointments = append(out.Appointments, UpcomingAppointment{
			AppointmentResponse: *models.FromDomainAppointment(u.Appointment, zone),
			MinutesUntil:        u.MinutesUntil,
		})
	}

	return out
}
