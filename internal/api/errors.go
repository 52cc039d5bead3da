package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/navikt/roomkiosk/internal/models"
	"github.com/navikt/roomkiosk/internal/schedule"
	"github.com/navikt/roomkiosk/internal/service"
)

// ErrorResponse is the body of every failed API request
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var errBadRequest = errors.New("invalid request body")

// statusFor maps domain errors to an HTTP status and a stable error code
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrRoomNotFound):
		return http.StatusNotFound, "room_not_found"
	case errors.Is(err, schedule.ErrNotFound):
		return http.StatusNotFound, "meeting_not_found"
	case errors.Is(err, schedule.ErrBookingConflict):
		return http.StatusConflict, "booking_conflict"
	case errors.Is(err, schedule.ErrExtensionConflict):
		return http.StatusConflict, "extension_conflict"
	case errors.Is(err, schedule.ErrInvalidSchedule):
		return http.StatusConflict, "invalid_schedule"
	case errors.Is(err, schedule.ErrInvalidDuration):
		return http.StatusBadRequest, "invalid_duration"
	case errors.Is(err, service.ErrInvalidSettings):
		return http.StatusBadRequest, "invalid_settings"
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, "bad_request"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// writeError writes err as JSON. Internal errors are logged and hidden from the caller.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status, code := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		message = "internal server error"
	}
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}
