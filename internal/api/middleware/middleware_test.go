package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var gotID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUserID(r.Context())
		require.True(t, ok)
		gotID = id
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantID     int64
	}{
		{"valid", "42", http.StatusNoContent, 42},
		{"missing", "", http.StatusUnauthorized, 0},
		{"not a number", "abc", http.StatusUnauthorized, 0},
		{"negative", "-1", http.StatusUnauthorized, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID = 0
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(HeaderUserID, tt.header)
			}
			rec := httptest.NewRecorder()

			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantID, gotID)
		})
	}
}

type observation struct {
	method string
	route  string
	status int
}

type stubObserver struct {
	observed []observation
}

func (o *stubObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	o.observed = append(o.observed, observation{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	observer := &stubObserver{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(observer))
	r.HandleFunc("/appointments/{appointmentId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointments/17", nil))

	require.Len(t, observer.observed, 1)
	assert.Equal(t, observation{http.MethodGet, "/appointments/{appointmentId}", http.StatusNotFound}, observer.observed[0])
}
