package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/usecase/validate_appointment"
)

// AppointmentBody тело запроса проверки, создания и обновления встречи.
// Время передается как "2024-03-04 09:00" в часовом поясе пользователя.
type AppointmentBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	CustomerID  int64  `json:"customerId"`
	ContactID   int64  `json:"contactId"`
	UserID      int64  `json:"userId"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// ValidationResponse ответ с результатом валидации
type ValidationResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ToCandidate конвертирует тело запроса в кандидата для валидации.
// id исключается из проверки пересечений (0 для новой встречи).
func (b *AppointmentBody) ToCandidate(id int64, zone *time.Location) (*validate_appointment.Request, error) {
	start, err := time.ParseInLocation(domain.DateTimeFormat, strings.TrimSpace(b.Start), zone)
	if err != nil {
		return nil, fmt.Errorf("parse start: %w", err)
	}

	end, err := time.ParseInLocation(domain.DateTimeFormat, strings.TrimSpace(b.End), zone)
	if err != nil {
		return nil, fmt.Errorf("parse end: %w", err)
	}

	return &validate_appointment.Request{
		ID:          id,
		Title:       b.Title,
		Description: b.Description,
		Location:    b.Location,
		Type:        domain.AppointmentType(b.Type),
		CustomerID:  b.CustomerID,
		ContactID:   b.ContactID,
		UserID:      b.UserID,
		Start:       start,
		End:         end,
		Zone:        zone,
	}, nil
}

// FromValidationResult конвертирует результат валидации в HTTP ответ
func FromValidationResult(res *validate_appointment.Result) *ValidationResponse {
	errs := res.Errors
	if errs == nil {
		errs = []string{}
	}
	return &ValidationResponse{Valid: res.Valid, Errors: errs}
}
