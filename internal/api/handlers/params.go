package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/service/timezone"
)

// HeaderTimeZone заголовок с IANA часовым поясом пользователя
const HeaderTimeZone = "X-Time-Zone"

// PathID извлекает положительный числовой ID из пути запроса
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

// QueryID извлекает опциональный числовой ID из query параметра
func QueryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// CallerZone возвращает часовой пояс пользователя из query параметра zone
// или заголовка X-Time-Zone. Без обоих используется часовой пояс сервера.
func CallerZone(r *http.Request) (*time.Location, error) {
	name := r.URL.Query().Get("zone")
	if name == "" {
		name = r.Header.Get(HeaderTimeZone)
	}
	return timezone.LoadZone(name)
}
