package get_time_options

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// defaultSlot вычисляет начало и окончание новой встречи по умолчанию.
// Начало округляется вверх до 15 минут; если округление перешло через полночь,
// дата начала переносится на следующий день. Дата окончания переносится,
// если окончание оказалось не позже начала.
func defaultSlot(now time.Time) (startDate time.Time, start domain.TimeOfDay, endDate time.Time, end domain.TimeOfDay) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	start = domain.ClosestTimeOfDay(now)
	startDate = today
	if start.Minutes() < now.Hour()*60+now.Minute() {
		startDate = today.AddDate(0, 0, 1)
	}

	end = start.PlusHours(domain.DefaultAppointmentHours)
	endDate = startDate
	if !end.After(start) {
		endDate = startDate.AddDate(0, 0, 1)
	}

	return startDate, start, endDate, end
}
