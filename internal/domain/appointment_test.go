package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppointmentType(t *testing.T) {
	for _, typ := range AppointmentTypes {
		got, err := ParseAppointmentType(string(typ))
		require.NoError(t, err)
		assert.Equal(t, typ, got)
		assert.True(t, got.IsValid())
	}

	_, err := ParseAppointmentType("Lunch")
	assert.ErrorIs(t, err, ErrUnknownAppointmentType)
	assert.False(t, AppointmentType("").IsValid())
}

func TestAppointment_StartsWithin(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	lead := 15 * time.Minute

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{name: "starting now", start: now, want: true},
		{name: "exactly at lead", start: now.Add(lead), want: true},
		{name: "after lead", start: now.Add(lead + time.Minute), want: false},
		{name: "already started", start: now.Add(-time.Minute), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Start: tt.start, End: tt.start.Add(time.Hour)}
			assert.Equal(t, tt.want, a.StartsWithin(now, lead))
		})
	}
}

func TestAppointment_Summary(t *testing.T) {
	a := &Appointment{
		ID:         7,
		CustomerID: 3,
		Start:      at(8, 0),
		End:        at(9, 0),
	}

	s := a.Summary()
	assert.Equal(t, int64(7), s.ID)
	assert.Equal(t, int64(3), s.CustomerID)
	assert.Equal(t, Interval{Start: at(8, 0), End: at(9, 0)}, s.Interval)
	assert.Equal(t, int64(-60), a.MinutesUntil(at(9, 0)))
}

func TestReportRow(t *testing.T) {
	a := &Appointment{
		ID:         12,
		Title:      "Kickoff",
		Type:       TypeIntroductory,
		Start:      at(9, 0),
		End:        at(10, 0),
		CustomerID: 4,
	}

	header := ReportHeader(AppointmentColumns)
	row := ReportRow(AppointmentColumns, a)

	require.Len(t, row, len(header))
	assert.Equal(t, "ID", header[0])
	assert.Equal(t, "12", row[0])
	assert.Equal(t, "Introductory", row[2])
	assert.Equal(t, "2024-03-04 09:00", row[4])
}

func TestMonthRange(t *testing.T) {
	r := MonthRange(2024, time.February, time.UTC)
	assert.Equal(t, date(2024, 2, 1), r.Start)
	assert.Equal(t, date(2024, 3, 1), r.End)
}
