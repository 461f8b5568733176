package get_week_appointments

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров.
// Без date используется текущая дата в часовом поясе пользователя.
func ToServiceRequest(r *http.Request, zone *time.Location, now time.Time) (*models.GetWeekRequest, error) {
	date := now.In(zone)
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, raw, zone)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	customerID, err := handlers.QueryID(r, "customerId")
	if err != nil {
		return nil, err
	}

	contactID, err := handlers.QueryID(r, "contactId")
	if err != nil {
		return nil, err
	}

	return &models.GetWeekRequest{
		Date:       date,
		Zone:       zone,
		CustomerID: customerID,
		ContactID:  contactID,
	}, nil
}
