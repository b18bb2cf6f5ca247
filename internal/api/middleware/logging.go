package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AccessLog пишет строку лога на каждый запрос; паника в обработчике превращается в 500
func AccessLog(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			defer func() {
				if p := recover(); p != nil {
					logger.Error("%s %s - panic: %v, request_id=%s", r.Method, r.URL.Path, p, GetRequestID(r.Context()))
					if rec.status == 0 {
						rec.WriteHeader(http.StatusInternalServerError)
					}
				}
				logger.Info("%s %s - status=%d duration_ms=%d request_id=%s",
					r.Method, r.URL.Path, rec.statusCode(), time.Since(start).Milliseconds(), GetRequestID(r.Context()))
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
