package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware отклоняет новые запросы после начала остановки сервиса,
// уже принятые запросы дорабатывают в рамках ongoingCtx.
func Middleware(shuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if shuttingDown.Load() {
					http.Error(w, "service is shutting down", http.StatusServiceUnavailable)
					return
				}
			default:
			}

			next.ServeHTTP(w, r)
		})
	}
}
