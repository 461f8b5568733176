package create_appointment

import (
	"context"

	saveAppointment "github.com/m04kA/SMC-SchedulerService/internal/usecase/save_appointment"
)

type SaveAppointmentUseCase interface {
	Execute(ctx context.Context, req *saveAppointment.Request) (*saveAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
