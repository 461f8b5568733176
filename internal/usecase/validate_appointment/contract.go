package validate_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	GetSummariesByCustomer(ctx context.Context, customerID int64) ([]domain.AppointmentSummary, error)
}

// BusinessHoursPolicy интерфейс политики рабочих часов головного офиса
type BusinessHoursPolicy interface {
	IsWithinOpenHours(interval domain.Interval, callerZone *time.Location) bool
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
