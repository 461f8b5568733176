package validate_appointment

import (
	"context"

	validateAppointment "github.com/m04kA/SMC-SchedulerService/internal/usecase/validate_appointment"
)

type ValidateAppointmentUseCase interface {
	Execute(ctx context.Context, req *validateAppointment.Request) (*validateAppointment.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
