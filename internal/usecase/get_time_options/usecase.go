package get_time_options

import (
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// UseCase use case для получения вариантов времени формы встречи
type UseCase struct {
	policy       BusinessHoursPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(policy BusinessHoursPolicy, logger Logger) *UseCase {
	return &UseCase{
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает варианты времени, значения по умолчанию и рабочие часы
func (uc *UseCase) Execute(req *Request) (*Response, error) {
	if req == nil || req.Zone == nil {
		return nil, ErrInvalidInput
	}

	now := uc.timeProvider.Now().In(req.Zone)
	startDate, start, endDate, end := defaultSlot(now)

	uc.logger.Info("GetTimeOptions: zone=%s, now=%s, default=%s %s - %s %s",
		req.Zone, now.Format(domain.DateTimeFormat),
		startDate.Format(domain.DateFormat), start, endDate.Format(domain.DateFormat), end)

	return &Response{
		Options:   domain.AllDayValues(),
		StartDate: startDate,
		Start:     start,
		EndDate:   endDate,
		End:       end,
		Hours:     uc.policy.Hours(req.Zone, now),
	}, nil
}
