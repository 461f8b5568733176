package get_month_appointments

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetMonth(ctx context.Context, req *models.GetMonthRequest) (*models.MonthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
