package http

import (
	"net/http"
	"time"

	"github.com/beautix-tech/admin-panel/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// requestID подставляет корреляционный идентификатор запроса,
// если клиент его не прислал.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(headerRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set(headerRequestID, rid)

		next.ServeHTTP(w, r)
	})
}

// requestLogger логирует каждый запрос: метод, путь, статус, время.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			switch {
			case status >= http.StatusInternalServerError:
				log.Errorf(nil, "%s %s -> %d (%s)", r.Method, r.URL.Path, status, time.Since(start))
			case status >= http.StatusBadRequest:
				log.Warnf("%s %s -> %d (%s)", r.Method, r.URL.Path, status, time.Since(start))
			default:
				log.Infof("%s %s -> %d (%s)", r.Method, r.URL.Path, status, time.Since(start))
			}
		})
	}
}
