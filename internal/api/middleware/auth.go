package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-TableBookingService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey    contextKey = "user_id"
	userIDHeader            = "X-User-ID"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный X-User-ID"
)

// Auth требует заголовок X-User-ID и кладет ID пользователя в контекст.
// Проверка подлинности выполняется на стороне gateway
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя, установленный Auth
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
