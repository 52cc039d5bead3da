package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/navikt/roomkiosk/internal/logging"
	"github.com/navikt/roomkiosk/internal/models"
	"github.com/navikt/roomkiosk/internal/service"
)

// AdminHandler handles the PIN-protected room administration endpoints
type AdminHandler struct {
	rooms  RoomServicer
	logger *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(rooms RoomServicer, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		rooms:  rooms,
		logger: logger,
	}
}

// ServeHTTP routes /admin/rooms/{roomID}/{action} requests
func (h *AdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimSuffix(r.URL.Path, "/"), "/")
	if len(parts) != 5 || parts[1] != "admin" || parts[2] != "rooms" || parts[3] == "" {
		http.NotFound(w, r)
		return
	}
	roomID, action := parts[3], parts[4]

	switch {
	case action == "reset" && r.Method == http.MethodPost:
		h.respond(w, roomID, action, func() (*models.Room, error) {
			return h.rooms.ResetSchedule(r.Context(), roomID)
		})
	case action == "clear" && r.Method == http.MethodPost:
		h.respond(w, roomID, action, func() (*models.Room, error) {
			return h.rooms.ClearSchedule(r.Context(), roomID)
		})
	case action == "settings" && r.Method == http.MethodPut:
		var change service.SettingsUpdate
		if err := decodeBody(r, &change); err != nil {
			writeError(w, h.logger, err)
			return
		}
		h.respond(w, roomID, action, func() (*models.Room, error) {
			return h.rooms.UpdateSettings(r.Context(), roomID, change)
		})
	case action == "reset" || action == "clear" || action == "settings":
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	default:
		http.NotFound(w, r)
	}
}

func (h *AdminHandler) respond(w http.ResponseWriter, roomID, action string, fn func() (*models.Room, error)) {
	room, err := fn()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	h.logger.Info("admin action applied", "room_id", logging.Sanitize(roomID), "action", action)
	writeJSON(w, http.StatusOK, room)
}
