package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/navikt/roomkiosk/internal/models"
	"github.com/navikt/roomkiosk/internal/seed"
)

// RoomsFile is the TOML document listing the rooms a kiosk serves
type RoomsFile struct {
	Rooms []RoomEntry `toml:"rooms"`
}

// RoomEntry is one [[rooms]] table
type RoomEntry struct {
	ID       string               `toml:"id"`
	Name     string               `toml:"name"`
	Capacity int                  `toml:"capacity"`
	Calendar *models.RoomSettings `toml:"calendar"`
}

// LoadRooms reads the rooms file at path. Rooms come back with an empty schedule.
func LoadRooms(path string) ([]models.Room, error) {
	var file RoomsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to load rooms file: %w", err)
	}
	return file.toRooms()
}

// RoomsOrDefault loads the rooms file when path is set and falls back to the
// demo rooms otherwise
func RoomsOrDefault(path string, day time.Time) ([]models.Room, error) {
	if path == "" {
		return seed.DefaultRooms(day), nil
	}
	return LoadRooms(path)
}

func (f RoomsFile) toRooms() ([]models.Room, error) {
	if len(f.Rooms) == 0 {
		return nil, fmt.Errorf("rooms file defines no rooms")
	}

	seen := make(map[string]struct{}, len(f.Rooms))
	rooms := make([]models.Room, 0, len(f.Rooms))
	for i, e := range f.Rooms {
		if e.ID == "" {
			return nil, fmt.Errorf("room %d: id is required", i+1)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("room %q: duplicate id", e.ID)
		}
		seen[e.ID] = struct{}{}
		if e.Capacity < 0 {
			return nil, fmt.Errorf("room %q: capacity cannot be negative", e.ID)
		}

		name := e.Name
		if name == "" {
			name = e.ID
		}
		rooms = append(rooms, models.Room{
			ID:       e.ID,
			Name:     name,
			Capacity: e.Capacity,
			Settings: e.Calendar,
			Schedule: []models.Meeting{},
		})
	}
	return rooms, nil
}
