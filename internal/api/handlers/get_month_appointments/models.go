package get_month_appointments

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров.
// Без year и month используется текущий месяц в часовом поясе пользователя.
func ToServiceRequest(r *http.Request, zone *time.Location, now time.Time) (*models.GetMonthRequest, error) {
	local := now.In(zone)
	year, month := local.Year(), int(local.Month())

	if raw := r.URL.Query().Get("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		year = v
	}

	if raw := r.URL.Query().Get("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		month = v
	}

	customerID, err := handlers.QueryID(r, "customerId")
	if err != nil {
		return nil, err
	}

	contactID, err := handlers.QueryID(r, "contactId")
	if err != nil {
		return nil, err
	}

	return &models.GetMonthRequest{
		Year:       year,
		Month:      time.Month(month),
		Zone:       zone,
		CustomerID: customerID,
		ContactID:  contactID,
	}, nil
}
