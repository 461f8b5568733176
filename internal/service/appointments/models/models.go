package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Request модели

// GetWeekRequest запрос встреч за неделю, содержащую Date
type GetWeekRequest struct {
	Date       time.Time      // Любая дата недели
	Zone       *time.Location // Часовой пояс пользователя
	CustomerID *int64         // Фильтр по клиенту (опционально)
	ContactID  *int64         // Фильтр по контакту (опционально)
}

// GetMonthRequest запрос встреч за календарный месяц
type GetMonthRequest struct {
	Year       int
	Month      time.Month
	Zone       *time.Location
	CustomerID *int64
	ContactID  *int64
}

// ScheduleRequest запрос расписания контакта или пользователя
type ScheduleRequest struct {
	ContactID *int64
	UserID    *int64
	Zone      *time.Location
}

// Response модели

// AppointmentResponse ответ с данными встречи
type AppointmentResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Start       string `json:"start"` // "2024-03-04 09:00" в часовом поясе пользователя
	End         string `json:"end"`
	CustomerID  int64  `json:"customerId"`
	ContactID   int64  `json:"contactId"`
	UserID      int64  `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком встреч
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// WeekResponse ответ со встречами недели и границами соседних недель
type WeekResponse struct {
	FirstDay     string                `json:"firstDay"` // "2024-03-03"
	LastDay      string                `json:"lastDay"`  // "2024-03-09"
	Label        string                `json:"label"`    // "2024-03-03 - 2024-03-09"
	PrevFirstDay string                `json:"prevFirstDay"`
	NextFirstDay string                `json:"nextFirstDay"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// MonthResponse ответ со встречами месяца
type MonthResponse struct {
	Year         int                   `json:"year"`
	Month        int                   `json:"month"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// CountEntry строка отчета с количеством
type CountEntry struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// CountReportResponse отчет с количеством встреч по категориям
type CountReportResponse struct {
	Entries []CountEntry `json:"entries"`
	Total   int64        `json:"total"`
}

// ScheduleResponse табличное расписание
type ScheduleResponse struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO, время выводится в zone
func FromDomainAppointment(a *domain.Appointment, zone *time.Location) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Location:    a.Location,
		Type:        string(a.Type),
		Start:       a.Start.In(zone).Format(domain.DateTimeFormat),
		End:         a.End.In(zone).Format(domain.DateTimeFormat),
		CustomerID:  a.CustomerID,
		ContactID:   a.ContactID,
		UserID:      a.UserID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment, zone *time.Location) []AppointmentResponse {
	resp := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		if r := FromDomainAppointment(a, zone); r != nil {
			resp = append(resp, *r)
		}
	}
	return resp
}
