// Package web serves the live side of the kiosk: per-room event streams,
// the periodic refresh tick, and the HTTP middleware shared by all routes
package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/navikt/roomkiosk/internal/models"
)

// Handler wires the event streams and the refresh ticker together
type Handler struct {
	sseManager *SSEManager
	ticker     *Ticker
	cancel     context.CancelFunc
}

// NewHandler creates the live update handler. Statuses are republished
// every tickInterval once Start is called.
func NewHandler(rooms StatusProvider, tickInterval time.Duration, logger *slog.Logger) *Handler {
	sseManager := NewSSEManager(rooms, logger)
	return &Handler{
		sseManager: sseManager,
		ticker:     NewTicker(tickInterval, sseManager, logger),
	}
}

// SetupRoutes registers the event stream on the given mux
func (h *Handler) SetupRoutes(mux *http.ServeMux) {
	mux.Handle("/events", h.sseManager)
}

// NotifyRoomUpdate is registered as a room service update callback
func (h *Handler) NotifyRoomUpdate(room *models.Room) {
	h.sseManager.NotifyRoomUpdate(room)
}

// Start runs the refresh ticker in the background
func (h *Handler) Start(ctx context.Context) {
	ctx, h.cancel = context.WithCancel(ctx)
	go h.ticker.Run(ctx)
}

// Shutdown stops the ticker and disconnects all stream clients
func (h *Handler) Shutdown() {
	if h.cancel != nil {
		h.cancel()
	}
	h.sseManager.Close()
}
