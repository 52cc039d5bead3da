// Package memory provides an in-memory implementation of the repository interface
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/navikt/roomkiosk/internal/models"
)

// Repository implements the repository interface with in-memory storage
type Repository struct {
	rooms map[string]models.Room
	mu    sync.RWMutex
}

// NewRepository creates a new in-memory repository
func NewRepository() *Repository {
	return &Repository{
		rooms: make(map[string]models.Room),
	}
}

// SaveRoom stores a copy of the room, replacing any room with the same id
func (r *Repository) SaveRoom(ctx context.Context, room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms[room.ID] = room.Clone()
	return nil
}

// GetRoom retrieves a room by id
func (r *Repository) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, models.ErrRoomNotFound
	}
	out := room.Clone()
	return &out, nil
}

// ListRooms returns all rooms ordered by id
func (r *Repository) ListRooms(ctx context.Context) ([]*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]*models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out := room.Clone()
		rooms = append(rooms, &out)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

// DeleteRoom removes a room by id
func (r *Repository) DeleteRoom(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[id]; !ok {
		return models.ErrRoomNotFound
	}
	delete(r.rooms, id)
	return nil
}

// Ping always succeeds
func (r *Repository) Ping(ctx context.Context) error {
	return nil
}
