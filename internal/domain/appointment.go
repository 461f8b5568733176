package domain

import (
	"errors"
	"time"
)

// AppointmentType represents the kind of an appointment
type AppointmentType string

const (
	TypeIntroductory   AppointmentType = "Introductory"
	TypeClosing        AppointmentType = "Closing"
	TypeSpecialEvent   AppointmentType = "Special Event"
	TypeProgressReport AppointmentType = "Progress Report"
	TypePlanning       AppointmentType = "Planning Session"
	TypeDebrief        AppointmentType = "De-Briefing"
)

// AppointmentTypes lists every type in display order
var AppointmentTypes = []AppointmentType{
	TypeIntroductory,
	TypeClosing,
	TypeSpecialEvent,
	TypeProgressReport,
	TypePlanning,
	TypeDebrief,
}

// ErrUnknownAppointmentType is returned by ParseAppointmentType for unknown values
var ErrUnknownAppointmentType = errors.New("domain: unknown appointment type")

// ParseAppointmentType converts a display value into an AppointmentType
func ParseAppointmentType(s string) (AppointmentType, error) {
	for _, t := range AppointmentTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrUnknownAppointmentType
}

// IsValid returns true if the type is one of AppointmentTypes
func (t AppointmentType) IsValid() bool {
	_, err := ParseAppointmentType(string(t))
	return err == nil
}

// Appointment represents a scheduled meeting with a customer
type Appointment struct {
	ID          int64
	Title       string
	Description string
	Location    string
	Type        AppointmentType
	Start       time.Time
	End         time.Time
	CustomerID  int64
	ContactID   int64
	UserID      int64 // пользователь, ответственный за встречу

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the appointment time range
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.Start, End: a.End}
}

// Summary returns the read-only view used for overlap checks
func (a *Appointment) Summary() AppointmentSummary {
	return AppointmentSummary{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		Interval:   a.Interval(),
	}
}

// MinutesUntil returns whole minutes from now until Start, negative if Start has passed
func (a *Appointment) MinutesUntil(now time.Time) int64 {
	return int64(a.Start.Sub(now) / time.Minute)
}

// StartsWithin returns true if Start lies in [now, now+lead]
func (a *Appointment) StartsWithin(now time.Time, lead time.Duration) bool {
	return !a.Start.Before(now) && !a.Start.After(now.Add(lead))
}

// AppointmentSummary is the part of an existing appointment that overlap
// detection needs. It is supplied by the storage layer and never mutated.
type AppointmentSummary struct {
	ID         int64
	CustomerID int64
	Interval   Interval
}

// AppointmentFilter фильтр для выборки встреч
type AppointmentFilter struct {
	CustomerID *int64     // Фильтр по клиенту (опционально)
	ContactID  *int64     // Фильтр по контакту (опционально)
	UserID     *int64     // Фильтр по пользователю (опционально)
	From       *time.Time // Начало периода включительно (опционально)
	To         *time.Time // Конец периода не включительно (опционально)
}
