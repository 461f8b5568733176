package get_reports

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments/models"
)

type ReportService interface {
	ReportByType(ctx context.Context) (*models.CountReportResponse, error)
	ReportByMonth(ctx context.Context, zone *time.Location) (*models.CountReportResponse, error)
	Schedule(ctx context.Context, req *models.ScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
