package web

import (
	"context"
	"time"

	"github.com/navikt/roomkiosk/internal/models"
	"github.com/navikt/roomkiosk/internal/service"
)

// StatusProvider is the part of the room service the live update layer reads from
type StatusProvider interface {
	Now() time.Time
	GetRoom(ctx context.Context, roomID string) (*models.Room, error)
	ListRooms(ctx context.Context) ([]*models.Room, error)
	StatusOf(room *models.Room, now time.Time) *service.RoomStatus
}

// Ensure the room service satisfies the interface
var _ StatusProvider = (*service.RoomService)(nil)
