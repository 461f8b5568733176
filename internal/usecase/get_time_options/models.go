package get_time_options

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businesshours"
)

// Request модель запроса вариантов времени для формы встречи
type Request struct {
	Zone *time.Location // Часовой пояс пользователя
}

// Response модель ответа с вариантами времени и значениями по умолчанию
type Response struct {
	Options []domain.TimeOfDay // Все 96 значений с шагом 15 минут начиная с 00:00

	StartDate time.Time        // Дата начала по умолчанию
	Start     domain.TimeOfDay // Ближайшее время начала (округление вверх)
	EndDate   time.Time        // Дата окончания по умолчанию
	End       domain.TimeOfDay // Окончание через DefaultAppointmentHours после начала

	Hours businesshours.Hours // Рабочие часы в часовом поясе офиса и пользователя
}
