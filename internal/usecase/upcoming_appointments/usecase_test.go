package upcoming_appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

type stubRepo struct {
	appointments []*domain.Appointment
	err          error
	filter       domain.AppointmentFilter
}

func (r *stubRepo) GetByFilter(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	r.filter = filter
	return r.appointments, r.err
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	at := func(minutes int) *domain.Appointment {
		return &domain.Appointment{ID: int64(minutes), Start: now.Add(time.Duration(minutes) * time.Minute)}
	}

	repo := &stubRepo{appointments: []*domain.Appointment{at(0), at(5), at(15), at(16)}}
	uc := NewUseCase(repo, 15, nopLogger{})
	uc.timeProvider = fixedTime{now: now}

	resp, err := uc.Execute(context.Background(), &Request{UserID: 3, Zone: time.UTC})

	require.NoError(t, err)
	assert.Equal(t, 15, resp.LeadMinutes)
	require.Len(t, resp.Appointments, 3)
	assert.Equal(t, int64(0), resp.Appointments[0].MinutesUntil)
	assert.Equal(t, int64(5), resp.Appointments[1].MinutesUntil)
	assert.Equal(t, int64(15), resp.Appointments[2].MinutesUntil)

	require.NotNil(t, repo.filter.UserID)
	assert.Equal(t, int64(3), *repo.filter.UserID)
	assert.True(t, repo.filter.From.Equal(now))
}

func TestUseCase_DefaultLead(t *testing.T) {
	uc := NewUseCase(&stubRepo{}, 0, nopLogger{})
	assert.Equal(t, domain.DefaultAlertLeadMinutes, uc.leadMinutes)
}

func TestUseCase_Errors(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		uc := NewUseCase(&stubRepo{}, 15, nopLogger{})
		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository failure", func(t *testing.T) {
		uc := NewUseCase(&stubRepo{err: errors.New("timeout")}, 15, nopLogger{})
		_, err := uc.Execute(context.Background(), &Request{UserID: 1})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
