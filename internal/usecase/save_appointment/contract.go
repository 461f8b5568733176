package save_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	GetSummariesByCustomer(ctx context.Context, customerID int64) ([]domain.AppointmentSummary, error)
}

// BusinessHoursPolicy интерфейс политики рабочих часов головного офиса
type BusinessHoursPolicy interface {
	IsWithinOpenHours(interval domain.Interval, callerZone *time.Location) bool
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для учета результатов валидации
type MetricsRecorder interface {
	RecordValidation(operation string, valid bool, failedChecks []string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
