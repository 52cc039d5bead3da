// Package repository defines interfaces for data storage
package repository

import (
	"context"

	"github.com/navikt/roomkiosk/internal/models"
)

// Repository stores rooms together with their schedules. Implementations
// return models.ErrRoomNotFound for unknown ids and never hand out
// references to their internal state.
type Repository interface {
	SaveRoom(ctx context.Context, room *models.Room) error
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	// ListRooms returns every room ordered by id
	ListRooms(ctx context.Context) ([]*models.Room, error)
	DeleteRoom(ctx context.Context, id string) error
	// Ping reports whether the backing store is reachable
	Ping(ctx context.Context) error
}
