// Package calendar provides the sources a room's schedule is loaded from
package calendar

import (
	"context"
	"log/slog"
	"time"

	"github.com/navikt/roomkiosk/internal/logging"
	"github.com/navikt/roomkiosk/internal/models"
	"github.com/navikt/roomkiosk/internal/seed"
)

// Source produces the meetings booked in a room on a given day
type Source interface {
	Meetings(ctx context.Context, room models.Room, day time.Time) ([]models.Meeting, error)
}

// MockSource serves the demo schedule for every room. It never leaves the process.
type MockSource struct {
	logger *slog.Logger
}

// NewMockSource creates a mock calendar source
func NewMockSource(logger *slog.Logger) *MockSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &MockSource{logger: logger}
}

// Meetings returns the demo schedule on day. Rooms with calendar settings still
// get the demo schedule; the settings are only logged.
func (s *MockSource) Meetings(ctx context.Context, room models.Room, day time.Time) ([]models.Meeting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if room.IsCalendarConfigured() {
		s.logger.Debug("calendar configured but only mock data is available", "room_id", logging.Sanitize(room.ID))
	}
	return seed.MockSchedule(day), nil
}
