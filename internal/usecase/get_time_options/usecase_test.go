package get_time_options

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businesshours"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDefaultSlot(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name          string
		now           time.Time
		wantStartDate time.Time
		wantStart     string
		wantEndDate   time.Time
		wantEnd       string
	}{
		{"on boundary", time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), day(4), "09:00", day(4), "10:00"},
		{"rounds up", time.Date(2024, 3, 4, 9, 1, 0, 0, time.UTC), day(4), "09:15", day(4), "10:15"},
		{"seconds ignored", time.Date(2024, 3, 4, 9, 30, 59, 0, time.UTC), day(4), "09:30", day(4), "10:30"},
		{"end wraps to midnight", time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC), day(4), "23:00", day(5), "00:00"},
		{"end wraps past midnight", time.Date(2024, 3, 4, 23, 40, 0, 0, time.UTC), day(4), "23:45", day(5), "00:45"},
		{"start wraps past midnight", time.Date(2024, 3, 4, 23, 50, 0, 0, time.UTC), day(5), "00:00", day(5), "01:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			startDate, start, endDate, end := defaultSlot(tt.now)
			assert.True(t, tt.wantStartDate.Equal(startDate), "start date %s", startDate)
			assert.Equal(t, tt.wantStart, start.String())
			assert.True(t, tt.wantEndDate.Equal(endDate), "end date %s", endDate)
			assert.Equal(t, tt.wantEnd, end.String())
		})
	}
}

func TestUseCase_Execute(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	policy, err := businesshours.DefaultPolicy()
	require.NoError(t, err)

	uc := NewUseCase(policy, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2024, 3, 4, 17, 5, 0, 0, time.UTC)}

	resp, err := uc.Execute(&Request{Zone: la})

	require.NoError(t, err)
	assert.Len(t, resp.Options, domain.TimeOfDayValuesPerDay)
	assert.Equal(t, domain.Midnight, resp.Options[0])
	// 17:05 UTC = 09:05 в Лос-Анджелесе
	assert.Equal(t, "09:15", resp.Start.String())
	assert.Equal(t, "10:15", resp.End.String())
	assert.Equal(t, "05:00", resp.Hours.LocalOpen.String())
	assert.Equal(t, "19:00", resp.Hours.LocalClose.String())
}

func TestUseCase_InvalidInput(t *testing.T) {
	policy, err := businesshours.DefaultPolicy()
	require.NoError(t, err)
	uc := NewUseCase(policy, nopLogger{})

	_, err = uc.Execute(&Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
