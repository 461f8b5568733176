package domain

import "time"

// DaysPerWeek is the length of a Week.
const DaysPerWeek = 7

// Week is a Sunday-to-Saturday calendar week. FirstDay is always a Sunday at
// midnight and LastDay is six days later.
type Week struct {
	FirstDay time.Time
	LastDay  time.Time
}

// WeekOf returns the week containing the calendar date of date.
func WeekOf(date time.Time) Week {
	day := dateOnly(date, date.Location())
	first := day.AddDate(0, 0, -int(day.Weekday()))
	return Week{
		FirstDay: first,
		LastDay:  first.AddDate(0, 0, DaysPerWeek-1),
	}
}

// Next returns the following week.
func (w Week) Next() Week {
	return Week{
		FirstDay: w.FirstDay.AddDate(0, 0, DaysPerWeek),
		LastDay:  w.LastDay.AddDate(0, 0, DaysPerWeek),
	}
}

// Prev returns the preceding week.
func (w Week) Prev() Week {
	return Week{
		FirstDay: w.FirstDay.AddDate(0, 0, -DaysPerWeek),
		LastDay:  w.LastDay.AddDate(0, 0, -DaysPerWeek),
	}
}

// Contains reports whether the calendar date of date falls between FirstDay and
// LastDay, both inclusive. The time of day is ignored.
func (w Week) Contains(date time.Time) bool {
	day := dateOnly(date, w.FirstDay.Location())
	return !day.Before(w.FirstDay) && !day.After(w.LastDay)
}

// Range returns the half-open instant range covering the whole week,
// from FirstDay 00:00 up to the following Sunday 00:00.
func (w Week) Range() Interval {
	return Interval{Start: w.FirstDay, End: w.LastDay.AddDate(0, 0, 1)}
}

// String formats the week as "YYYY-MM-DD - YYYY-MM-DD".
func (w Week) String() string {
	return w.FirstDay.Format(DateFormat) + " - " + w.LastDay.Format(DateFormat)
}

// dateOnly keeps the calendar date of t and places it at midnight in loc.
func dateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
