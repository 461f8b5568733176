package save_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulerService/internal/usecase/validate_appointment"
	"github.com/m04kA/SMC-SchedulerService/pkg/txmanager"
)

const (
	operationCreate = "create"
	operationUpdate = "update"
)

// UseCase use case для создания и обновления встречи
type UseCase struct {
	appointmentRepo AppointmentRepository
	validator       *validate_appointment.Validator
	txManager       TransactionManager
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	policy BusinessHoursPolicy,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		validator:       validate_appointment.NewValidator(policy),
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case сохранения встречи.
// Встречи клиента перечитываются с блокировкой внутри сериализуемой транзакции,
// поэтому конфликтующая встреча из параллельной сессии не пройдет проверку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.ID < 0 {
		return nil, ErrInvalidInput
	}

	operation := operationCreate
	if req.ID != 0 {
		operation = operationUpdate
	}

	uc.logger.Info("SaveAppointment: %s id=%d, actor=%d, customer=%d, start=%s, end=%s",
		operation, req.ID, req.ActorID, req.CustomerID,
		req.Start.Format(domain.DateTimeFormat), req.End.Format(domain.DateTimeFormat))

	var response *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Проверяем, что обновляемая встреча существует
		if operation == operationUpdate {
			if _, err := uc.appointmentRepo.GetByID(txCtx, req.ID); err != nil {
				if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
					uc.logger.Warn("SaveAppointment: appointment id=%d not found", req.ID)
					return ErrAppointmentNotFound
				}
				uc.logger.Error("SaveAppointment: failed to get appointment id=%d: %v", req.ID, err)
				return fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
			}
		}

		// 2. Получаем встречи клиента с блокировкой (FOR UPDATE)
		summaries, err := validate_appointment.FetchSummaries(txCtx, uc.appointmentRepo, req.CustomerID)
		if err != nil {
			uc.logger.Error("SaveAppointment: failed to get appointments of customer id=%d: %v", req.CustomerID, err)
			return fmt.Errorf("%w: failed to get customer appointments: %w", ErrInternal, err)
		}

		// 3. Валидация кандидата
		result := uc.validator.Validate(&req.Request, summaries)
		if uc.metrics != nil {
			uc.metrics.RecordValidation(operation, result.Valid, result.FailedChecks())
		}
		if !result.Valid {
			uc.logger.Warn("SaveAppointment: validation failed: %v", result.Errors)
			response = &Response{Validation: result}
			return ErrValidationFailed
		}

		// 4. Сохраняем встречу
		appointment := toDomain(req)

		var saved *domain.Appointment
		if operation == operationCreate {
			saved, err = uc.appointmentRepo.Create(txCtx, appointment)
		} else {
			saved, err = uc.appointmentRepo.Update(txCtx, appointment)
		}
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("SaveAppointment: failed to %s appointment: %v", operation, err)
			return fmt.Errorf("%w: failed to %s appointment: %w", ErrInternal, operation, err)
		}

		response = &Response{Appointment: saved, Validation: result}
		return nil
	})

	if errors.Is(err, ErrValidationFailed) {
		return response, err
	}
	if errors.Is(err, txmanager.ErrSerialization) {
		uc.logger.Warn("SaveAppointment: serialization conflict for customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SaveAppointment: successfully saved appointment id=%d", response.Appointment.ID)

	return response, nil
}

func toDomain(req *Request) *domain.Appointment {
	interval := req.Interval()
	return &domain.Appointment{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Type:        req.Type,
		Start:       interval.Start,
		End:         interval.End,
		CustomerID:  req.CustomerID,
		ContactID:   req.ContactID,
		UserID:      req.UserID,
	}
}
