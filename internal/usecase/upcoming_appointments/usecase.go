package upcoming_appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/ptr"
)

// UseCase use case для оповещения о ближайших встречах пользователя
type UseCase struct {
	appointmentRepo AppointmentRepository
	leadMinutes     int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// leadMinutes <= 0 заменяется значением по умолчанию.
func NewUseCase(appointmentRepo AppointmentRepository, leadMinutes int, logger Logger) *UseCase {
	if leadMinutes <= 0 {
		leadMinutes = domain.DefaultAlertLeadMinutes
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		leadMinutes:     leadMinutes,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает встречи пользователя, начинающиеся в ближайшие leadMinutes минут
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.UserID <= 0 {
		return nil, ErrInvalidInput
	}

	zone := req.Zone
	if zone == nil {
		zone = time.Local
	}

	now := uc.timeProvider.Now().In(zone)
	lead := time.Duration(uc.leadMinutes) * time.Minute

	uc.logger.Info("UpcomingAppointments: user=%d, now=%s, lead=%d min",
		req.UserID, now.Format(domain.DateTimeFormat), uc.leadMinutes)

	// верхняя граница фильтра не включительна, а окно оповещения включает now+lead
	filter := domain.AppointmentFilter{
		UserID: ptr.Ptr(req.UserID),
		From:   ptr.Ptr(now),
		To:     ptr.Ptr(now.Add(lead + time.Minute)),
	}

	appointments, err := uc.appointmentRepo.GetByFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("UpcomingAppointments: failed to get appointments of user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	upcoming := make([]Upcoming, 0, len(appointments))
	for _, a := range appointments {
		if !a.StartsWithin(now, lead) {
			continue
		}
		upcoming = append(upcoming, Upcoming{
			Appointment:  a,
			MinutesUntil: a.MinutesUntil(now),
		})
	}

	return &Response{
		Now:          now,
		LeadMinutes:  uc.leadMinutes,
		Appointments: upcoming,
	}, nil
}
