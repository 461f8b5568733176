package domain

import (
	"errors"
	"fmt"
	"time"
)

// QuarterHour is the step between two adjacent TimeOfDay values.
const QuarterHour = 15

// TimeOfDayValuesPerDay is the number of quantized values in one day.
const TimeOfDayValuesPerDay = 24 * 60 / QuarterHour

// ErrInvalidTimeOfDay is returned when a wall-clock value is out of range or not
// aligned to a quarter hour.
var ErrInvalidTimeOfDay = errors.New("domain: invalid time of day")

// TimeOfDay is an immutable wall-clock value quantized to 15-minute boundaries.
// It is not tied to any date or timezone. The zero value is midnight.
type TimeOfDay struct {
	hour   int
	minute int
}

// Midnight is 00:00, the first value of a day.
var Midnight = TimeOfDay{}

// NewTimeOfDay creates a TimeOfDay, rejecting values that are out of range or not
// on a quarter hour.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d out of range", ErrInvalidTimeOfDay, hour)
	}
	if minute < 0 || minute > 59 || minute%QuarterHour != 0 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d is not a quarter hour", ErrInvalidTimeOfDay, minute)
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

// MustTimeOfDay is like NewTimeOfDay but panics on invalid input.
// Intended for constants and tests.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay parses an "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parsed, err := time.Parse(TimeFormat, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %v", ErrInvalidTimeOfDay, err)
	}
	return NewTimeOfDay(parsed.Hour(), parsed.Minute())
}

// fromMinutes builds a value from minutes since midnight, wrapping modulo 24h.
// The argument must already be a multiple of QuarterHour.
func fromMinutes(total int) TimeOfDay {
	total %= 24 * 60
	if total < 0 {
		total += 24 * 60
	}
	return TimeOfDay{hour: total / 60, minute: total % 60}
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int { return t.hour }

// Minute returns the minute component.
func (t TimeOfDay) Minute() int { return t.minute }

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int { return t.hour*60 + t.minute }

// Next15 returns the value 15 minutes later, wrapping past midnight.
func (t TimeOfDay) Next15() TimeOfDay {
	return fromMinutes(t.Minutes() + QuarterHour)
}

// Prev15 returns the value 15 minutes earlier, wrapping past midnight.
func (t TimeOfDay) Prev15() TimeOfDay {
	return fromMinutes(t.Minutes() - QuarterHour)
}

// PlusHours returns the value n hours later, modulo 24 hours. n may be negative.
func (t TimeOfDay) PlusHours(n int) TimeOfDay {
	return fromMinutes(t.Minutes() + (n%24)*60)
}

// Equal reports whether both hour and minute match.
func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t == other
}

// Before compares within one nominal day; there is no cross-midnight ordering.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

// After compares within one nominal day; there is no cross-midnight ordering.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.Minutes() > other.Minutes()
}

// On places the value on the calendar date of date, in loc.
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.hour, t.minute, 0, 0, loc)
}

// String formats the value as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// ClosestTimeOfDay rounds the wall clock of instant up to the next quarter hour.
// Seconds are ignored, so a value already on a boundary is returned unchanged.
func ClosestTimeOfDay(instant time.Time) TimeOfDay {
	minutes := instant.Hour()*60 + instant.Minute()
	if diff := minutes % QuarterHour; diff != 0 {
		minutes += QuarterHour - diff
	}
	return fromMinutes(minutes)
}

// AllDayValues returns every quantized value of a day in order, starting at midnight.
// The sequence is produced by stepping with Next15 until a value repeats.
func AllDayValues() []TimeOfDay {
	values := make([]TimeOfDay, 0, TimeOfDayValuesPerDay)
	seen := make(map[TimeOfDay]struct{}, TimeOfDayValuesPerDay)

	for current := Midnight; ; current = current.Next15() {
		if _, ok := seen[current]; ok {
			break
		}
		seen[current] = struct{}{}
		values = append(values, current)
	}

	return values
}
