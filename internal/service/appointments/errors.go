package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда встреча не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
