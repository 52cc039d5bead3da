package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/navikt/roomkiosk/internal/logging"
	"github.com/navikt/roomkiosk/internal/models"
	"github.com/r3labs/sse/v2"
)

// UpdateEvent is the SSE event name carrying a room status
const UpdateEvent = "update"

// SSEManager publishes room statuses to kiosks over server-sent events.
// Every room has its own stream, selected with ?stream=<room id>.
type SSEManager struct {
	server  *sse.Server
	rooms   StatusProvider
	logger  *slog.Logger
	eventID atomic.Uint64
}

// NewSSEManager creates a new server-sent events manager
func NewSSEManager(rooms StatusProvider, logger *slog.Logger) *SSEManager {
	server := sse.New()
	// Kiosks fetch the full status on connect, old events are never replayed
	server.AutoReplay = false
	server.AutoStream = false

	return &SSEManager{
		server: server,
		rooms:  rooms,
		logger: logger,
	}
}

// ServeHTTP implements the http.Handler interface for SSE connections
func (sm *SSEManager) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	roomID := r.URL.Query().Get("stream")
	if roomID == "" {
		http.Error(w, "stream parameter required", http.StatusBadRequest)
		return
	}

	if _, err := sm.rooms.GetRoom(r.Context(), roomID); err != nil {
		if errors.Is(err, models.ErrRoomNotFound) {
			http.Error(w, "Room not found", http.StatusNotFound)
			return
		}
		sm.logger.Error("failed to look up room for stream", "room_id", logging.Sanitize(roomID), "error", err)
		http.Error(w, "Error retrieving room", http.StatusInternalServerError)
		return
	}

	sm.ensureStream(roomID)
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx proxy buffering

	sm.logger.Debug("SSE client connected", "room_id", logging.Sanitize(roomID), "remote_addr", r.RemoteAddr)
	sm.server.ServeHTTP(w, r)
	sm.logger.Debug("SSE client disconnected", "room_id", logging.Sanitize(roomID))
}

func (sm *SSEManager) ensureStream(roomID string) {
	if !sm.server.StreamExists(roomID) {
		sm.server.CreateStream(roomID)
	}
}

// NotifyRoomUpdate publishes the current status of a changed room
func (sm *SSEManager) NotifyRoomUpdate(room *models.Room) {
	sm.publish(room, sm.rooms.StatusOf(room, sm.rooms.Now()))
}

// PublishAll publishes a fresh status for every room at the same instant
func (sm *SSEManager) PublishAll(ctx context.Context) error {
	rooms, err := sm.rooms.ListRooms(ctx)
	if err != nil {
		return err
	}

	now := sm.rooms.Now()
	for _, room := range rooms {
		sm.publish(room, sm.rooms.StatusOf(room, now))
	}
	return nil
}

func (sm *SSEManager) publish(room *models.Room, status any) {
	data, err := json.Marshal(status)
	if err != nil {
		sm.logger.Error("failed to encode room status", "room_id", logging.Sanitize(room.ID), "error", err)
		return
	}

	sm.ensureStream(room.ID)
	sm.server.Publish(room.ID, &sse.Event{
		ID:    []byte(strconv.FormatUint(sm.eventID.Add(1), 10)),
		Event: []byte(UpdateEvent),
		Data:  data,
	})
}

// Close disconnects all clients and removes every stream
func (sm *SSEManager) Close() {
	sm.server.Close()
}
