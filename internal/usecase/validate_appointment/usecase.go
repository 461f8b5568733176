package validate_appointment

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

const operationName = "validate"

// UseCase use case для валидации встречи без сохранения
type UseCase struct {
	appointmentRepo AppointmentRepository
	validator       *Validator
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	policy BusinessHoursPolicy,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		validator:       NewValidator(policy),
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute получает встречи клиента и проверяет кандидата.
// Ошибки валидации возвращаются в Result, а не как error.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Result, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}

	uc.logger.Info("ValidateAppointment: id=%d, customer=%d, start=%s, end=%s",
		req.ID, req.CustomerID, req.Start.Format(domain.DateTimeFormat), req.End.Format(domain.DateTimeFormat))

	summaries, err := FetchSummaries(ctx, uc.appointmentRepo, req.CustomerID)
	if err != nil {
		uc.logger.Error("ValidateAppointment: failed to get appointments of customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer appointments: %v", ErrInternal, err)
	}

	result := uc.validator.Validate(req, summaries)
	if uc.metrics != nil {
		uc.metrics.RecordValidation(operationName, result.Valid, result.FailedChecks())
	}

	if !result.Valid {
		uc.logger.Warn("ValidateAppointment: candidate rejected: %v", result.Errors)
	}

	return result, nil
}

// FetchSummaries получает встречи клиента, если клиент указан.
// Без клиента проверять пересечения не с чем.
func FetchSummaries(ctx context.Context, repo AppointmentRepository, customerID int64) ([]domain.AppointmentSummary, error) {
	if customerID <= 0 {
		return nil, nil
	}
	return repo.GetSummariesByCustomer(ctx, customerID)
}
