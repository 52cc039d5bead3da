// Package redis provides a Redis/Valkey implementation of the repository interface
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/navikt/roomkiosk/internal/config"
	"github.com/navikt/roomkiosk/internal/models"
	"github.com/redis/go-redis/v9"
)

// roomState is the stored form of a room
type roomState struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Capacity int                  `json:"capacity"`
	Settings *models.RoomSettings `json:"settings,omitempty"`
	Schedule []models.Meeting     `json:"schedule"`
	SavedAt  time.Time            `json:"saved_at"`
}

func (s roomState) toRoom() *models.Room {
	room := models.Room{
		ID:       s.ID,
		Name:     s.Name,
		Capacity: s.Capacity,
		Settings: s.Settings,
	}.WithSchedule(s.Schedule)
	return &room
}

// Repository implements the repository interface with Redis storage
type Repository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRepository creates a new Redis repository
func NewRepository(cfg config.RedisConfig) (*Repository, error) {
	var client *redis.Client

	// Use URI if provided, otherwise build connection from individual parameters
	if cfg.URI != "" {
		opt, err := redis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
		}

		// Use DB from config if not specified in the URI
		if opt.DB == 0 {
			opt.DB = cfg.DB
		}

		if opt.Password == "" && cfg.Password != "" {
			opt.Password = cfg.Password
		}

		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Repository{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		ttl:       cfg.RoomTTL,
	}, nil
}

// Close closes the Redis connection
func (r *Repository) Close() error {
	return r.client.Close()
}

// roomKey returns the Redis key for a room
func (r *Repository) roomKey(id string) string {
	return fmt.Sprintf("%srooms:%s", r.keyPrefix, id)
}

// SaveRoom stores the room and its schedule, replacing any previous value
func (r *Repository) SaveRoom(ctx context.Context, room *models.Room) error {
	state := roomState{
		ID:       room.ID,
		Name:     room.Name,
		Capacity: room.Capacity,
		Settings: room.Settings,
		Schedule: room.Schedule,
		SavedAt:  time.Now().UTC(),
	}

	data, err := json.Marshal(&state)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	if err := r.client.Set(ctx, r.roomKey(room.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}
	return nil
}

// GetRoom retrieves a room by id
func (r *Repository) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	data, err := r.client.Get(ctx, r.roomKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var state roomState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}
	return state.toRoom(), nil
}

// ListRooms returns all stored rooms ordered by id. Entries that cannot be
// decoded are skipped.
func (r *Repository) ListRooms(ctx context.Context) ([]*models.Room, error) {
	keys, err := r.client.Keys(ctx, r.roomKey("*")).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	if len(keys) == 0 {
		return []*models.Room{}, nil
	}

	// Use MGET to retrieve all rooms in a single roundtrip
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get room data: %w", err)
	}

	rooms := make([]*models.Room, 0, len(values))
	for _, v := range values {
		strData, ok := v.(string)
		if !ok {
			continue
		}

		var state roomState
		if err := json.Unmarshal([]byte(strData), &state); err != nil {
			continue
		}
		rooms = append(rooms, state.toRoom())
	}

	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

// DeleteRoom removes a room by id
func (r *Repository) DeleteRoom(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, r.roomKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if n == 0 {
		return models.ErrRoomNotFound
	}
	return nil
}

// Ping checks the connection to Redis
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
