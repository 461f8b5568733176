package save_appointment

import "errors"

var (
	// ErrValidationFailed возвращается, когда встреча не прошла валидацию
	ErrValidationFailed = errors.New("save_appointment: appointment validation failed")

	// ErrAppointmentNotFound возвращается, когда обновляемая встреча не найдена
	ErrAppointmentNotFound = errors.New("save_appointment: appointment not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("save_appointment: invalid input data")

	// ErrConcurrentUpdate возвращается, если параллельная транзакция помешала сохранить встречу
	ErrConcurrentUpdate = errors.New("save_appointment: concurrent update, retry later")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("save_appointment: internal error")
)
