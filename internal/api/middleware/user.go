package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SpaBookingService/internal/api/handlers"
)

const (
	UserIDHeader = "X-User-ID"

	msgInvalidUserID = "некорректный X-User-ID"
)

// UserID читает необязательный заголовок X-User-ID (ID оператора).
// Заголовок только идентифицирует оператора, прав он не дает.
func UserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUserID, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID оператора, если заголовок был передан
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(ctxKeyUserID).(int64)
	return userID, ok
}

// UserIDPtr то же, что GetUserID, в виде указателя для моделей запросов
func UserIDPtr(ctx context.Context) *int64 {
	if userID, ok := GetUserID(ctx); ok {
		return &userID
	}
	return nil
}
