package upcoming_appointments

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Request модель запроса ближайших встреч пользователя
type Request struct {
	UserID int64          // ID пользователя из заголовка X-User-ID
	Zone   *time.Location // Часовой пояс для отображения
}

// Upcoming встреча с количеством минут до начала
type Upcoming struct {
	Appointment  *domain.Appointment
	MinutesUntil int64
}

// Response модель ответа
type Response struct {
	Now          time.Time  // Момент проверки в часовом поясе пользователя
	LeadMinutes  int        // Окно оповещения в минутах
	Appointments []Upcoming // Встречи, начинающиеся в [Now, Now+LeadMinutes]
}
