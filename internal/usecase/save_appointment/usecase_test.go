package save_appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businesshours"
	"github.com/m04kA/SMC-SchedulerService/internal/usecase/validate_appointment"
	"github.com/m04kA/SMC-SchedulerService/pkg/txmanager"
)

type stubRepo struct {
	existing  map[int64]*domain.Appointment
	summaries []domain.AppointmentSummary
	createErr error

	created []*domain.Appointment
	updated []*domain.Appointment
}

func (r *stubRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := r.existing[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (r *stubRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *a
	created.ID = 100
	r.created = append(r.created, &created)
	return &created, nil
}

func (r *stubRepo) Update(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	updated := *a
	r.updated = append(r.updated, &updated)
	return &updated, nil
}

func (r *stubRepo) GetSummariesByCustomer(_ context.Context, _ int64) ([]domain.AppointmentSummary, error) {
	return r.summaries, nil
}

type stubTxManager struct {
	calls     int
	commitErr error
}

func (m *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return m.commitErr
}

type stubMetrics struct {
	operations []string
}

func (m *stubMetrics) RecordValidation(operation string, _ bool, _ []string) {
	m.operations = append(m.operations, operation)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func newRequest(loc *time.Location, id int64) *Request {
	return &Request{
		Request: validate_appointment.Request{
			ID:          id,
			Title:       "Review",
			Description: "Quarterly review",
			Location:    "New York",
			Type:        domain.TypeProgressReport,
			CustomerID:  1,
			ContactID:   2,
			UserID:      3,
			Start:       time.Date(2024, 3, 4, 9, 0, 0, 0, loc),
			End:         time.Date(2024, 3, 4, 10, 0, 0, 0, loc),
			Zone:        loc,
		},
		ActorID: 3,
	}
}

func newTestUseCase(t *testing.T, repo *stubRepo, tx *stubTxManager, m *stubMetrics) *UseCase {
	t.Helper()
	policy, err := businesshours.DefaultPolicy()
	require.NoError(t, err)
	return NewUseCase(repo, policy, tx, m, nopLogger{})
}

func TestUseCase_Create(t *testing.T) {
	ny := newYork(t)
	repo := &stubRepo{}
	tx := &stubTxManager{}
	m := &stubMetrics{}
	uc := newTestUseCase(t, repo, tx, m)

	resp, err := uc.Execute(context.Background(), newRequest(ny, 0))

	require.NoError(t, err)
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, int64(100), resp.Appointment.ID)
	assert.True(t, resp.Validation.Valid)
	assert.Len(t, repo.created, 1)
	assert.Empty(t, repo.updated)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []string{operationCreate}, m.operations)
}

func TestUseCase_CreateConflict(t *testing.T) {
	ny := newYork(t)
	repo := &stubRepo{
		summaries: []domain.AppointmentSummary{{
			ID:         7,
			CustomerID: 1,
			Interval: domain.Interval{
				Start: time.Date(2024, 3, 4, 8, 30, 0, 0, ny),
				End:   time.Date(2024, 3, 4, 9, 30, 0, 0, ny),
			},
		}},
	}
	uc := newTestUseCase(t, repo, &stubTxManager{}, &stubMetrics{})

	resp, err := uc.Execute(context.Background(), newRequest(ny, 0))

	assert.ErrorIs(t, err, ErrValidationFailed)
	require.NotNil(t, resp)
	assert.Nil(t, resp.Appointment)
	assert.Equal(t, []string{"Customer has overlapping appointment from 2024-03-04 08:30 - 2024-03-04 09:30."}, resp.Validation.Errors)
	assert.Empty(t, repo.created)
}

func TestUseCase_UpdateExcludesItself(t *testing.T) {
	ny := newYork(t)
	req := newRequest(ny, 7)
	repo := &stubRepo{
		existing: map[int64]*domain.Appointment{7: {ID: 7, CustomerID: 1}},
		summaries: []domain.AppointmentSummary{{
			ID:         7,
			CustomerID: 1,
			Interval:   domain.Interval{Start: req.Start.Add(-30 * time.Minute), End: req.End.Add(-30 * time.Minute)},
		}},
	}
	m := &stubMetrics{}
	uc := newTestUseCase(t, repo, &stubTxManager{}, m)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Appointment.ID)
	assert.Len(t, repo.updated, 1)
	assert.Equal(t, []string{operationUpdate}, m.operations)
}

func TestUseCase_Errors(t *testing.T) {
	ny := newYork(t)

	tests := []struct {
		name    string
		repo    *stubRepo
		req     *Request
		wantErr error
	}{
		{
			name:    "nil request",
			repo:    &stubRepo{},
			req:     nil,
			wantErr: ErrInvalidInput,
		},
		{
			name:    "update of missing appointment",
			repo:    &stubRepo{},
			req:     newRequest(ny, 42),
			wantErr: ErrAppointmentNotFound,
		},
		{
			name:    "storage failure",
			repo:    &stubRepo{createErr: errors.New("disk full")},
			req:     newRequest(ny, 0),
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, tt.repo, &stubTxManager{}, &stubMetrics{})

			resp, err := uc.Execute(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_SerializationConflict(t *testing.T) {
	ny := newYork(t)
	tx := &stubTxManager{
		commitErr: fmt.Errorf("%w: %w", txmanager.ErrSerialization, &pq.Error{Code: "40001"}),
	}
	uc := newTestUseCase(t, &stubRepo{}, tx, &stubMetrics{})

	resp, err := uc.Execute(context.Background(), newRequest(ny, 0))

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.NotErrorIs(t, err, ErrInternal)
}

func TestUseCase_StorageErrorKeepsDriverError(t *testing.T) {
	ny := newYork(t)
	repo := &stubRepo{createErr: fmt.Errorf("%w: execute insert: %w", appointmentRepo.ErrExecQuery, &pq.Error{Code: "40001"})}
	uc := newTestUseCase(t, repo, &stubTxManager{}, &stubMetrics{})

	_, err := uc.Execute(context.Background(), newRequest(ny, 0))

	require.ErrorIs(t, err, ErrInternal)
	assert.True(t, txmanager.IsSerializationFailure(err))
}
