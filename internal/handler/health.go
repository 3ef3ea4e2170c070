package handler

import (
	"net/http"
	"time"

	"github.com/josh-kwaku/invoice-dashboard/internal/query"
)

type HealthHandler struct {
	src     query.Source
	version string
}

func NewHealthHandler(src query.Source, version string) *HealthHandler {
	return &HealthHandler{src: src, version: version}
}

// Liveness reports only on this process.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"version":   h.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Upstream reports the invoice service's own health.
func (h *HealthHandler) Upstream(w http.ResponseWriter, r *http.Request) {
	status, ok := load(w, r, query.NewHealth(h.src), nil)
	if !ok {
		return
	}
	RespondSuccess(w, http.StatusOK, map[string]any{
		"up":     status.IsUp(),
		"health": status,
	})
}
