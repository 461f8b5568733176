package validate_appointment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Сообщения валидации, возвращаемые клиенту
const (
	MsgTitleRequired       = "Title must have a value."
	MsgDescriptionRequired = "Description must have a value."
	MsgLocationRequired    = "Location must have a value."
	MsgTypeRequired        = "Type must have a value."
	MsgCustomerRequired    = "Customer must have a value."
	MsgContactRequired     = "Contact must have a value."
	MsgUserRequired        = "User must have a value."
	MsgTitleTooLong        = "Title must be at most 50 characters."
	MsgDescriptionTooLong  = "Description must be at most 50 characters."
	MsgLocationTooLong     = "Location must be at most 50 characters."
	MsgStartBeforeEnd      = "Start date and time must be before end date and time."
	MsgOutsideOpenHours    = "Appointment timeframe must be within open office hours."

	overlapMessageFormat = "Customer has overlapping appointment from %s."
)

// Названия проверок для метрик
const (
	CheckRequired      = "required"
	CheckLength        = "length"
	CheckInterval      = "interval"
	CheckBusinessHours = "business_hours"
	CheckOverlap       = "overlap"
)

// Validator проверяет кандидата встречи против политики рабочих часов и
// существующих встреч клиента. Не выполняет ввода-вывода.
type Validator struct {
	policy BusinessHoursPolicy
}

// NewValidator создает новый валидатор
func NewValidator(policy BusinessHoursPolicy) *Validator {
	return &Validator{policy: policy}
}

// Validate выполняет все проверки и накапливает ошибки.
// Некорректный интервал пропускает проверки рабочих часов и пересечений.
func (v *Validator) Validate(req *Request, existing []domain.AppointmentSummary) *Result {
	res := &Result{Errors: make([]string, 0)}
	zone := req.TimeZone()

	// 1. Обязательные поля
	required := []struct {
		ok  bool
		msg string
	}{
		{notBlank(req.Title), MsgTitleRequired},
		{notBlank(req.Description), MsgDescriptionRequired},
		{notBlank(req.Location), MsgLocationRequired},
		{req.Type.IsValid(), MsgTypeRequired},
		{req.CustomerID > 0, MsgCustomerRequired},
		{req.ContactID > 0, MsgContactRequired},
		{req.UserID > 0, MsgUserRequired},
	}
	for _, field := range required {
		if !field.ok {
			res.fail(CheckRequired, field.msg)
		}
	}

	// Длина текстовых полей ограничена схемой хранения
	limited := []struct {
		value string
		msg   string
	}{
		{req.Title, MsgTitleTooLong},
		{req.Description, MsgDescriptionTooLong},
		{req.Location, MsgLocationTooLong},
	}
	for _, field := range limited {
		if utf8.RuneCountInString(field.value) > domain.MaxTextFieldLength {
			res.fail(CheckLength, field.msg)
		}
	}

	// 2. Корректность интервала, кандидат приводится к поясу вызывающей стороны
	candidate := req.Interval()
	if err := candidate.Validate(); err != nil {
		res.fail(CheckInterval, MsgStartBeforeEnd)
		return res.finish()
	}

	// 3. Рабочие часы головного офиса
	if !v.policy.IsWithinOpenHours(candidate, zone) {
		res.fail(CheckBusinessHours, MsgOutsideOpenHours)
	}

	// 4. Пересечение с другими встречами клиента, сообщаем только о первом
	if req.CustomerID > 0 {
		if conflict, ok := firstConflict(req, candidate, existing); ok {
			res.fail(CheckOverlap, fmt.Sprintf(overlapMessageFormat, conflict.Interval.In(zone)))
		}
	}

	return res.finish()
}

func firstConflict(req *Request, candidate domain.Interval, existing []domain.AppointmentSummary) (domain.AppointmentSummary, bool) {
	for _, s := range existing {
		if s.CustomerID != req.CustomerID {
			continue
		}
		if req.ID != 0 && s.ID == req.ID {
			continue
		}

		overlaps, err := domain.Overlaps(candidate, s.Interval)
		if err != nil {
			// сохраненная встреча с вырожденным интервалом не может пересекаться
			continue
		}
		if overlaps {
			return s, true
		}
	}
	return domain.AppointmentSummary{}, false
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

func (r *Result) fail(check, msg string) {
	r.Errors = append(r.Errors, msg)
	for _, c := range r.failedChecks {
		if c == check {
			return
		}
	}
	r.failedChecks = append(r.failedChecks, check)
}

func (r *Result) finish() *Result {
	r.Valid = len(r.Errors) == 0
	return r
}
