package appointments

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
	CountByType(ctx context.Context) (map[domain.AppointmentType]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
