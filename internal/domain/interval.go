package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval is returned for an interval whose start is not strictly before its end.
var ErrInvalidInterval = errors.New("domain: start must be before end")

// Interval is a date-time range [Start, End). Both endpoints carry their own location.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval creates an interval, rejecting degenerate ranges.
func NewInterval(start, end time.Time) (Interval, error) {
	i := Interval{Start: start, End: end}
	if err := i.Validate(); err != nil {
		return Interval{}, err
	}
	return i, nil
}

// Validate checks that Start is strictly before End.
func (i Interval) Validate() error {
	if !i.Start.Before(i.End) {
		return fmt.Errorf("%w: start=%s end=%s", ErrInvalidInterval,
			i.Start.Format(DateTimeFormat), i.End.Format(DateTimeFormat))
	}
	return nil
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// In returns the interval with both endpoints expressed in loc.
func (i Interval) In(loc *time.Location) Interval {
	return Interval{Start: i.Start.In(loc), End: i.End.In(loc)}
}

// String formats the interval as "YYYY-MM-DD HH:MM - YYYY-MM-DD HH:MM".
func (i Interval) String() string {
	return i.Start.Format(DateTimeFormat) + " - " + i.End.Format(DateTimeFormat)
}

// Overlaps reports whether a and b share any instant. Intervals that only touch
// at an endpoint are adjacent, not overlapping. The result is symmetric.
func Overlaps(a, b Interval) (bool, error) {
	if err := a.Validate(); err != nil {
		return false, err
	}
	if err := b.Validate(); err != nil {
		return false, err
	}

	// b ends before a starts or starts after a ends
	if !b.End.After(a.Start) || !b.Start.Before(a.End) {
		return false, nil
	}
	return true, nil
}
