package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/mueed25/new-nahcon/internal/service"

	"go.uber.org/zap"
)

// HealthHandler reports store reachability. An unreachable store is a
// degraded status, not a failure: the response stays HTTP 200 with
// success=false so probes can tell the two states apart.
type HealthHandler struct {
	contacts *service.ContactService
	logger   *zap.Logger
}

func NewHealthHandler(contacts *service.ContactService, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{contacts: contacts, logger: logger}
}

// Health: GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	timestamp := time.Now().UTC().Format(time.RFC3339)
	if err := h.contacts.Ping(ctx); err != nil {
		h.logger.Warn("health check: store unreachable", zap.Error(err))
		writeJSON(w, http.StatusOK, map[string]any{
			"success":   false,
			"database":  "disconnected",
			"error":     "Database unreachable",
			"timestamp": timestamp,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Service is healthy",
		"timestamp": timestamp,
	})
}
