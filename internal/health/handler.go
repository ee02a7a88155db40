package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Lelo88/listas-api/internal/httpx"
)

const readyTimeout = 2 * time.Second

// Pinger es lo mínimo que necesita /ready para chequear la DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler encapsula endpoints de health.
type Handler struct {
	database Pinger
}

// New crea un handler de health. database puede ser nil (ready responde 503).
func New(database Pinger) *Handler {
	return &Handler{database: database}
}

// Health indica si el proceso está vivo.
// NO chequea base de datos; eso es /ready.
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, r, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready indica si la app puede atender requests: la DB tiene que responder.
func (handler *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if handler.database == nil {
		httpx.Fail(w, r, http.StatusServiceUnavailable, "not_ready", "database pool not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := handler.database.Ping(ctx); err != nil {
		slog.WarnContext(r.Context(), "readiness check failed", "error", err)
		httpx.Fail(w, r, http.StatusServiceUnavailable, "not_ready", "database is not reachable")
		return
	}

	httpx.OK(w, r, http.StatusOK, map[string]any{
		"status": "ready",
	})
}
