package timezone

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// ErrInvalidZone возвращается при некорректном идентификаторе часового пояса
var ErrInvalidZone = errors.New("timezone: invalid zone identifier")

// LoadZone загружает часовой пояс по IANA-идентификатору.
// Пустая строка и "Local" означают системный часовой пояс.
func LoadZone(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidZone, name, err)
	}
	return loc, nil
}

// Convert трактует показания часов local как время в поясе from и возвращает
// тот же момент времени, выраженный в поясе to.
// Пояс, записанный в самом local, игнорируется: важны только дата и время на часах.
func Convert(local time.Time, from, to *time.Location) time.Time {
	y, m, d := local.Date()
	zoned := time.Date(y, m, d, local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), from)
	return zoned.In(to)
}

// ConvertTimeOfDay переводит время суток между поясами.
// Смещение определяется на дату referenceDate, так как одного времени суток
// недостаточно, чтобы учесть переход на летнее время.
func ConvertTimeOfDay(t domain.TimeOfDay, from, to *time.Location, referenceDate time.Time) domain.TimeOfDay {
	converted := Convert(t.On(referenceDate, from), from, to)
	return domain.ClosestTimeOfDay(converted)
}
