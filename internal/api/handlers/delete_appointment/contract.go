package delete_appointment

import "context"

type AppointmentService interface {
	Delete(ctx context.Context, id int64, actorID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
