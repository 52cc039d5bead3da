package api

import (
	"context"
	"net/http"

	"github.com/navikt/roomkiosk/internal/models"
	"github.com/navikt/roomkiosk/internal/schedule"
	"github.com/navikt/roomkiosk/internal/service"
)

// RoomServicer defines the room service operations needed by API handlers
type RoomServicer interface {
	Ping(ctx context.Context) error
	Summaries(ctx context.Context) ([]models.RoomSummary, error)
	Status(ctx context.Context, roomID string) (*service.RoomStatus, error)
	Timeline() schedule.Timeline

	// Walk-in actions
	QuickBook(ctx context.Context, roomID string, minutes int) (models.Meeting, error)
	EndEarly(ctx context.Context, roomID, meetingID string) (*models.Room, error)
	EndCurrent(ctx context.Context, roomID string) (*models.Room, error)
	Extend(ctx context.Context, roomID, meetingID string, minutes int) (*models.Room, error)
	ExtendCurrent(ctx context.Context, roomID string, minutes int) (*models.Room, error)

	// Admin actions
	ResetSchedule(ctx context.Context, roomID string) (*models.Room, error)
	ClearSchedule(ctx context.Context, roomID string) (*models.Room, error)
	UpdateSettings(ctx context.Context, roomID string, change service.SettingsUpdate) (*models.Room, error)
}

// Authorizer guards admin handlers
type Authorizer interface {
	RequireAuth(next http.HandlerFunc) http.HandlerFunc
}

var _ RoomServicer = (*service.RoomService)(nil)
