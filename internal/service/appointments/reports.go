package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments/models"
)

// ReportByType считает встречи каждого типа. Типы без встреч выводятся с нулем.
func (s *Service) ReportByType(ctx context.Context) (*models.CountReportResponse, error) {
	s.logger.Info("ReportByType: building report")

	counts, err := s.appointmentRepo.CountByType(ctx)
	if err != nil {
		s.logger.Error("ReportByType: repository error: %v", err)
		return nil, fmt.Errorf("%w: ReportByType - repository error: %v", ErrInternal, err)
	}

	resp := &models.CountReportResponse{Entries: make([]models.CountEntry, 0, len(domain.AppointmentTypes))}
	for _, t := range domain.AppointmentTypes {
		resp.Entries = append(resp.Entries, models.CountEntry{Label: string(t), Count: counts[t]})
		resp.Total += counts[t]
	}

	return resp, nil
}

// ReportByMonth считает встречи по месяцу начала в часовом поясе zone.
// Все двенадцать месяцев присутствуют в отчете.
func (s *Service) ReportByMonth(ctx context.Context, zone *time.Location) (*models.CountReportResponse, error) {
	s.logger.Info("ReportByMonth: building report")

	appointments, err := s.appointmentRepo.GetByFilter(ctx, domain.AppointmentFilter{})
	if err != nil {
		s.logger.Error("ReportByMonth: repository error: %v", err)
		return nil, fmt.Errorf("%w: ReportByMonth - repository error: %v", ErrInternal, err)
	}

	zone = zoneOrLocal(zone)
	var counts [12]int64
	for _, a := range appointments {
		counts[a.Start.In(zone).Month()-1]++
	}

	resp := &models.CountReportResponse{Entries: make([]models.CountEntry, 0, len(counts))}
	for i, c := range counts {
		resp.Entries = append(resp.Entries, models.CountEntry{Label: time.Month(i + 1).String(), Count: c})
		resp.Total += c
	}

	return resp, nil
}

// Schedule строит расписание контакта или пользователя по таблице колонок domain.AppointmentColumns
func (s *Service) Schedule(ctx context.Context, req *models.ScheduleRequest) (*models.ScheduleResponse, error) {
	if req == nil || (req.ContactID == nil) == (req.UserID == nil) {
		return nil, fmt.Errorf("%w: exactly one of contactId or userId is required", ErrInvalidInput)
	}

	s.logger.Info("Schedule: building schedule for %s", scheduleOwner(req))

	appointments, err := s.appointmentRepo.GetByFilter(ctx, domain.AppointmentFilter{
		ContactID: req.ContactID,
		UserID:    req.UserID,
	})
	if err != nil {
		s.logger.Error("Schedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: Schedule - repository error: %v", ErrInternal, err)
	}

	zone := zoneOrLocal(req.Zone)
	resp := &models.ScheduleResponse{
		Header: domain.ReportHeader(domain.AppointmentColumns),
		Rows:   make([][]string, 0, len(appointments)),
	}
	for _, a := range appointments {
		local := *a
		local.Start = a.Start.In(zone)
		local.End = a.End.In(zone)
		resp.Rows = append(resp.Rows, domain.ReportRow(domain.AppointmentColumns, &local))
	}

	return resp, nil
}

func scheduleOwner(req *models.ScheduleRequest) string {
	if req.ContactID != nil {
		return fmt.Sprintf("contact=%d", *req.ContactID)
	}
	return fmt.Sprintf("user=%d", *req.UserID)
}
