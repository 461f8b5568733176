package get_time_options

import (
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	getTimeOptions "github.com/m04kA/SMC-SchedulerService/internal/usecase/get_time_options"
)

// BusinessHoursResponse рабочие часы в часовом поясе офиса и пользователя
type BusinessHoursResponse struct {
	HeadquartersZone string `json:"headquartersZone"`
	Open             string `json:"open"`
	Close            string `json:"close"`
	LocalZone        string `json:"localZone"`
	LocalOpen        string `json:"localOpen"`
	LocalClose       string `json:"localClose"`
}

// TimeOptionsResponse HTTP response model
type TimeOptionsResponse struct {
	Options       []string              `json:"options"` // "00:00", "00:15", ...
	StartDate     string                `json:"startDate"`
	Start         string                `json:"start"`
	EndDate       string                `json:"endDate"`
	End           string                `json:"end"`
	BusinessHours BusinessHoursResponse `json:"businessHours"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeOptions.Response) *TimeOptionsResponse {
	options := make([]string, len(resp.Options))
	for i, o := range resp.Options {
		options[i] = o.String()
	}

	return &TimeOptionsResponse{
		Options:   options,
		StartDate: resp.StartDate.Format(domain.DateFormat),
		Start:     resp.Start.String(),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		End:       resp.End.String(),
		BusinessHours: BusinessHoursResponse{
			HeadquartersZone: resp.Hours.HeadquartersZone,
			Open:             resp.Hours.Open.String(),
			Close:            resp.Hours.Close.String(),
			LocalZone:        resp.Hours.LocalZone,
			LocalOpen:        resp.Hours.LocalOpen.String(),
			LocalClose:       resp.Hours.LocalClose.String(),
		},
	}
}
