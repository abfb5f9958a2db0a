package middleware

import (
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// LoggingMiddleware логирует метод, путь, статус и длительность запроса.
// Тела запроса и ответа не логируются.
func LoggingMiddleware(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := newResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			switch {
			case wrapped.status >= http.StatusInternalServerError:
				log.Error("%s %s - status=%d, bytes=%d, duration_ms=%d",
					r.Method, r.URL.Path, wrapped.status, wrapped.written, duration.Milliseconds())
			default:
				log.Info("%s %s - status=%d, bytes=%d, duration_ms=%d",
					r.Method, r.URL.Path, wrapped.status, wrapped.written, duration.Milliseconds())
			}
		})
	}
}
