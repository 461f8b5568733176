package domain

import (
	"strconv"
	"time"
)

// ReportColumn maps a column label to an accessor on Appointment
type ReportColumn struct {
	Label string
	Value func(a *Appointment) string
}

// AppointmentColumns is the fixed column table used by schedule reports
var AppointmentColumns = []ReportColumn{
	{Label: "ID", Value: func(a *Appointment) string { return strconv.FormatInt(a.ID, 10) }},
	{Label: "Title", Value: func(a *Appointment) string { return a.Title }},
	{Label: "Type", Value: func(a *Appointment) string { return string(a.Type) }},
	{Label: "Description", Value: func(a *Appointment) string { return a.Description }},
	{Label: "Start", Value: func(a *Appointment) string { return a.Start.Format(DateTimeFormat) }},
	{Label: "End", Value: func(a *Appointment) string { return a.End.Format(DateTimeFormat) }},
	{Label: "Customer ID", Value: func(a *Appointment) string { return strconv.FormatInt(a.CustomerID, 10) }},
}

// ReportRow renders a row using the given columns
func ReportRow(columns []ReportColumn, a *Appointment) []string {
	row := make([]string, len(columns))
	for i, c := range columns {
		row[i] = c.Value(a)
	}
	return row
}

// ReportHeader returns the labels of the given columns
func ReportHeader(columns []ReportColumn) []string {
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.Label
	}
	return header
}

// MonthRange returns the half-open range of a calendar month in loc
func MonthRange(year int, month time.Month, loc *time.Location) Interval {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Interval{Start: first, End: first.AddDate(0, 1, 0)}
}
