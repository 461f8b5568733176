package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// HTTPObserver интерфейс для учета HTTP запросов
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware считает запросы и их длительность.
// Маршрут берется из шаблона mux, чтобы ID в пути не раздували кардинальность.
func MetricsMiddleware(observer HTTPObserver) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := "unknown"
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}

			observer.ObserveHTTP(r.Method, route, rec.status, time.Since(start))
		})
	}
}
