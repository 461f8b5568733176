package get_time_options

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/service/businesshours"
)

// BusinessHoursPolicy интерфейс политики рабочих часов головного офиса
type BusinessHoursPolicy interface {
	Hours(zone *time.Location, today time.Time) businesshours.Hours
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
