package save_appointment

import (
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/usecase/validate_appointment"
)

// Request модель запроса на создание (ID = 0) или обновление встречи
type Request struct {
	validate_appointment.Request

	ActorID int64 // ID пользователя, выполняющего операцию
}

// Response модель ответа с сохраненной встречей.
// При ErrValidationFailed заполнено только поле Validation.
type Response struct {
	Appointment *domain.Appointment
	Validation  *validate_appointment.Result
}
