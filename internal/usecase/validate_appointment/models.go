package validate_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/timezone"
)

// Request модель кандидата встречи для валидации
type Request struct {
	ID          int64                  // ID редактируемой встречи, исключается из проверки пересечений (0 для новой)
	Title       string                 // Заголовок
	Description string                 // Описание
	Location    string                 // Место проведения
	Type        domain.AppointmentType // Тип встречи
	CustomerID  int64                  // ID клиента (0 - не указан)
	ContactID   int64                  // ID контакта (0 - не указан)
	UserID      int64                  // ID ответственного пользователя (0 - не указан)
	Start       time.Time              // Начало встречи (показания часов в поясе Zone)
	End         time.Time              // Окончание встречи (показания часов в поясе Zone)
	Zone        *time.Location         // Часовой пояс вызывающей стороны
}

// TimeZone возвращает часовой пояс вызывающей стороны, по умолчанию системный
func (r *Request) TimeZone() *time.Location {
	if r.Zone == nil {
		return time.Local
	}
	return r.Zone
}

// Interval возвращает интервал кандидата в поясе вызывающей стороны.
// Start и End трактуются как показания часов в Zone, собственный пояс time.Time игнорируется,
// поэтому все проверки и сохранение работают с одними и теми же моментами времени.
func (r *Request) Interval() domain.Interval {
	zone := r.TimeZone()
	return domain.Interval{
		Start: timezone.Convert(r.Start, zone, zone),
		End:   timezone.Convert(r.End, zone, zone),
	}
}

// Result результат валидации
type Result struct {
	Valid  bool     // true, если ни одна проверка не нашла ошибок
	Errors []string // Сообщения об ошибках в порядке проверок

	failedChecks []string
}

// FailedChecks возвращает названия проваленных проверок (для метрик)
func (r *Result) FailedChecks() []string {
	return r.failedChecks
}
