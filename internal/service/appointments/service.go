package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments/models"
)

// Service сервис для чтения и удаления встреч и построения отчетов
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса встреч
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает встречу по ID, время выводится в часовом поясе zone
func (s *Service) GetByID(ctx context.Context, id int64, zone *time.Location) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment, zoneOrLocal(zone)), nil
}

// Delete удаляет встречу
func (s *Service) Delete(ctx context.Context, id int64, actorID int64) error {
	s.logger.Info("Delete: deleting appointment id=%d by user=%d", id, actorID)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

// GetWeek получает встречи недели (воскресенье - суббота), содержащей req.Date
func (s *Service) GetWeek(ctx context.Context, req *models.GetWeekRequest) (*models.WeekResponse, error) {
	if req == nil || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	zone := zoneOrLocal(req.Zone)
	week := domain.WeekOf(time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, zone))
	s.logger.Info("GetWeek: fetching appointments for week %s", week)

	appointments, err := s.listInRange(ctx, week.Range(), req.CustomerID, req.ContactID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for week %s: %v", week, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	return &models.WeekResponse{
		FirstDay:     week.FirstDay.Format(domain.DateFormat),
		LastDay:      week.LastDay.Format(domain.DateFormat),
		Label:        week.String(),
		PrevFirstDay: week.Prev().FirstDay.Format(domain.DateFormat),
		NextFirstDay: week.Next().FirstDay.Format(domain.DateFormat),
		Appointments: models.FromDomainAppointmentList(appointments, zone),
	}, nil
}

// GetMonth получает встречи календарного месяца
func (s *Service) GetMonth(ctx context.Context, req *models.GetMonthRequest) (*models.MonthResponse, error) {
	if req == nil || req.Month < time.January || req.Month > time.December || req.Year <= 0 {
		return nil, fmt.Errorf("%w: invalid year or month", ErrInvalidInput)
	}

	zone := zoneOrLocal(req.Zone)
	s.logger.Info("GetMonth: fetching appointments for %04d-%02d", req.Year, int(req.Month))

	appointments, err := s.listInRange(ctx, domain.MonthRange(req.Year, req.Month, zone), req.CustomerID, req.ContactID)
	if err != nil {
		s.logger.Error("GetMonth: repository error for %04d-%02d: %v", req.Year, int(req.Month), err)
		return nil, fmt.Errorf("%w: GetMonth - repository error: %v", ErrInternal, err)
	}

	return &models.MonthResponse{
		Year:         req.Year,
		Month:        int(req.Month),
		Appointments: models.FromDomainAppointmentList(appointments, zone),
	}, nil
}

func (s *Service) listInRange(ctx context.Context, r domain.Interval, customerID, contactID *int64) ([]*domain.Appointment, error) {
	return s.appointmentRepo.GetByFilter(ctx, domain.AppointmentFilter{
		CustomerID: customerID,
		ContactID:  contactID,
		From:       &r.Start,
		To:         &r.End,
	})
}

func zoneOrLocal(zone *time.Location) *time.Location {
	if zone == nil {
		return time.Local
	}
	return zone
}
