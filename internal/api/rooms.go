package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/navikt/roomkiosk/internal/models"
	"github.com/navikt/roomkiosk/internal/schedule"
	"github.com/navikt/roomkiosk/internal/service"
)

// DurationRequest is the body of book and extend requests
type DurationRequest struct {
	Minutes int `json:"minutes"`
}

// BookingResponse is returned when a quick-book succeeds
type BookingResponse struct {
	Meeting models.Meeting      `json:"meeting"`
	Status  *service.RoomStatus `json:"status"`
}

// TimelineResponse is the block list for a room's day
type TimelineResponse struct {
	RoomID    string           `json:"room_id"`
	Blocks    []schedule.Block `json:"blocks"`
	NowOffset int              `json:"now_offset_minutes"`
	Minutes   int              `json:"window_minutes"`
}

// RoomHandler handles HTTP requests for rooms and walk-in actions
type RoomHandler struct {
	rooms  RoomServicer
	logger *slog.Logger
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(rooms RoomServicer, logger *slog.Logger) *RoomHandler {
	return &RoomHandler{
		rooms:  rooms,
		logger: logger,
	}
}

// ServeHTTP routes /api/rooms requests
func (h *RoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Path format: /api/rooms[/{roomID}[/{action}|/meetings/{meetingID}/{action}]]
	parts := strings.Split(strings.TrimSuffix(r.URL.Path, "/"), "/")
	if len(parts) < 3 || parts[1] != "api" || parts[2] != "rooms" {
		http.NotFound(w, r)
		return
	}
	parts = parts[3:]

	switch {
	case len(parts) == 0 && r.Method == http.MethodGet:
		h.listRooms(w, r)
	case len(parts) == 1 && r.Method == http.MethodGet:
		h.getRoom(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "timeline" && r.Method == http.MethodGet:
		h.getTimeline(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "book" && r.Method == http.MethodPost:
		h.quickBook(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "end" && r.Method == http.MethodPost:
		h.endCurrent(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "extend" && r.Method == http.MethodPost:
		h.extendCurrent(w, r, parts[0])
	case len(parts) == 4 && parts[1] == "meetings" && parts[3] == "end" && r.Method == http.MethodPost:
		h.endMeeting(w, r, parts[0], parts[2])
	case len(parts) == 4 && parts[1] == "meetings" && parts[3] == "extend" && r.Method == http.MethodPost:
		h.extendMeeting(w, r, parts[0], parts[2])
	case len(parts) <= 4:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	default:
		http.NotFound(w, r)
	}
}

// listRooms handles GET /api/rooms
func (h *RoomHandler) listRooms(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.rooms.Summaries(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

// getRoom handles GET /api/rooms/{roomID}
func (h *RoomHandler) getRoom(w http.ResponseWriter, r *http.Request, roomID string) {
	status, err := h.rooms.Status(r.Context(), roomID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// getTimeline handles GET /api/rooms/{roomID}/timeline
func (h *RoomHandler) getTimeline(w http.ResponseWriter, r *http.Request, roomID string) {
	status, err := h.rooms.Status(r.Context(), roomID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, TimelineResponse{
		RoomID:    status.RoomID,
		Blocks:    status.Timeline,
		NowOffset: status.NowOffset,
		Minutes:   h.rooms.Timeline().Window.Minutes(),
	})
}

// quickBook handles POST /api/rooms/{roomID}/book
func (h *RoomHandler) quickBook(w http.ResponseWriter, r *http.Request, roomID string) {
	req, err := decodeDuration(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	booking, err := h.rooms.QuickBook(r.Context(), roomID, req.Minutes)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	status, err := h.rooms.Status(r.Context(), roomID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, BookingResponse{Meeting: booking, Status: status})
}

// endCurrent handles POST /api/rooms/{roomID}/end
func (h *RoomHandler) endCurrent(w http.ResponseWriter, r *http.Request, roomID string) {
	_, err := h.rooms.EndCurrent(r.Context(), roomID)
	h.respondWithStatus(w, r, roomID, err)
}

// extendCurrent handles POST /api/rooms/{roomID}/extend
func (h *RoomHandler) extendCurrent(w http.ResponseWriter, r *http.Request, roomID string) {
	req, err := decodeDuration(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	_, err = h.rooms.ExtendCurrent(r.Context(), roomID, req.Minutes)
	h.respondWithStatus(w, r, roomID, err)
}

// endMeeting handles POST /api/rooms/{roomID}/meetings/{meetingID}/end
func (h *RoomHandler) endMeeting(w http.ResponseWriter, r *http.Request, roomID, meetingID string) {
	_, err := h.rooms.EndEarly(r.Context(), roomID, meetingID)
	h.respondWithStatus(w, r, roomID, err)
}

// extendMeeting handles POST /api/rooms/{roomID}/meetings/{meetingID}/extend
func (h *RoomHandler) extendMeeting(w http.ResponseWriter, r *http.Request, roomID, meetingID string) {
	req, err := decodeDuration(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	_, err = h.rooms.Extend(r.Context(), roomID, meetingID, req.Minutes)
	h.respondWithStatus(w, r, roomID, err)
}

// respondWithStatus writes the room's fresh status after a successful action
func (h *RoomHandler) respondWithStatus(w http.ResponseWriter, r *http.Request, roomID string, err error) {
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	status, err := h.rooms.Status(r.Context(), roomID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func decodeDuration(r *http.Request) (DurationRequest, error) {
	var req DurationRequest
	if err := decodeBody(r, &req); err != nil {
		return req, err
	}
	return req, nil
}

// decodeBody decodes a JSON body into v, rejecting unknown fields
func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", errBadRequest)
		}
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}
