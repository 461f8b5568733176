package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
)

// HeaderUserID заголовок с ID пользователя, выставляемый шлюзом
const HeaderUserID = "X-User-ID"

const msgMissingUserID = "отсутствует или некорректен заголовок X-User-ID"

type userIDKey struct{}

// Auth извлекает ID пользователя из заголовка X-User-ID и кладет его в контекст.
// Запросы без корректного заголовка отклоняются с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя, сохраненный Auth
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
