package businesshours

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/timezone"
)

// ErrInvalidPolicy возвращается при некорректной конфигурации рабочих часов
var ErrInvalidPolicy = errors.New("businesshours: invalid policy")

// Policy рабочие часы головного офиса.
// Часы работы задаются в часовом поясе головного офиса и не зависят от пояса пользователя.
// Значение неизменяемо после создания.
type Policy struct {
	headquarters *time.Location
	open         domain.TimeOfDay
	close        domain.TimeOfDay
}

// NewPolicy создает политику рабочих часов.
// Некорректный пояс или open >= close считаются ошибкой конфигурации.
func NewPolicy(headquartersZone string, open, close domain.TimeOfDay) (*Policy, error) {
	loc, err := timezone.LoadZone(headquartersZone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	if !open.Before(close) {
		return nil, fmt.Errorf("%w: open %s must be before close %s", ErrInvalidPolicy, open, close)
	}

	return &Policy{
		headquarters: loc,
		open:         open,
		close:        close,
	}, nil
}

// NewPolicyFromStrings создает политику из строк формата HH:MM
func NewPolicyFromStrings(headquartersZone, open, close string) (*Policy, error) {
	openTime, err := domain.ParseTimeOfDay(open)
	if err != nil {
		return nil, fmt.Errorf("%w: open: %v", ErrInvalidPolicy, err)
	}

	closeTime, err := domain.ParseTimeOfDay(close)
	if err != nil {
		return nil, fmt.Errorf("%w: close: %v", ErrInvalidPolicy, err)
	}

	return NewPolicy(headquartersZone, openTime, closeTime)
}

// DefaultPolicy возвращает политику по умолчанию: America/New_York, 08:00–22:00
func DefaultPolicy() (*Policy, error) {
	return NewPolicyFromStrings(domain.DefaultHeadquartersZone, domain.DefaultOpenTime, domain.DefaultCloseTime)
}

// Headquarters возвращает часовой пояс головного офиса
func (p *Policy) Headquarters() *time.Location {
	return p.headquarters
}

// Open возвращает время открытия в поясе головного офиса
func (p *Policy) Open() domain.TimeOfDay {
	return p.open
}

// Close возвращает время закрытия в поясе головного офиса
func (p *Policy) Close() domain.TimeOfDay {
	return p.close
}

// IsWithinOpenHours проверяет, что интервал, заданный в поясе callerZone,
// после перевода в пояс головного офиса укладывается в рабочие часы одного дня.
//
// Обе границы включительные: встреча может начаться ровно в open и закончиться ровно в close.
// Интервал, пересекающий полночь по времени головного офиса, отклоняется, даже если
// у пользователя он целиком приходится на один день.
func (p *Policy) IsWithinOpenHours(interval domain.Interval, callerZone *time.Location) bool {
	hqStart := timezone.Convert(interval.Start, callerZone, p.headquarters)
	hqEnd := timezone.Convert(interval.End, callerZone, p.headquarters)

	if !sameDay(hqStart, hqEnd) {
		return false
	}

	openAt := p.open.On(hqStart, p.headquarters)
	closeAt := p.close.On(hqStart, p.headquarters)

	return !hqStart.Before(openAt) && !hqEnd.After(closeAt)
}

// LocalOpen возвращает время открытия в поясе zone.
// today используется для определения смещения с учетом летнего времени.
func (p *Policy) LocalOpen(zone *time.Location, today time.Time) domain.TimeOfDay {
	return timezone.ConvertTimeOfDay(p.open, p.headquarters, zone, today)
}

// LocalClose возвращает время закрытия в поясе zone.
// today используется для определения смещения с учетом летнего времени.
func (p *Policy) LocalClose(zone *time.Location, today time.Time) domain.TimeOfDay {
	return timezone.ConvertTimeOfDay(p.close, p.headquarters, zone, today)
}

// Hours возвращает представление рабочих часов для отображения пользователю
func (p *Policy) Hours(zone *time.Location, today time.Time) Hours {
	return Hours{
		HeadquartersZone: p.headquarters.String(),
		Open:             p.open,
		Close:            p.close,
		LocalZone:        zone.String(),
		LocalOpen:        p.LocalOpen(zone, today),
		LocalClose:       p.LocalClose(zone, today),
	}
}

// Hours рабочие часы в поясе головного офиса и в поясе пользователя
type Hours struct {
	HeadquartersZone string
	Open             domain.TimeOfDay
	Close            domain.TimeOfDay
	LocalZone        string
	LocalOpen        domain.TimeOfDay
	LocalClose       domain.TimeOfDay
}

// sameDay проверяет, что две даты относятся к одному и тому же дню
func sameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
