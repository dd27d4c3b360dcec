package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler отвечает 503 как только начался graceful shutdown, чтобы
// балансировщик перестал слать новые запросы.
type Handler struct {
	shuttingDown *atomic.Bool
}

func New(shuttingDown *atomic.Bool) *Handler {
	return &Handler{
		shuttingDown: shuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.shuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
