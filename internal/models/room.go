package models

import "errors"

// ErrRoomNotFound is returned by room stores when a room id is unknown
var ErrRoomNotFound = errors.New("room not found")

// RoomSettings holds optional calendar integration settings for a room.
// Nothing in the schedule engine reads it.
type RoomSettings struct {
	CalendarID string `json:"calendar_id,omitempty" toml:"calendar_id"`
	APIKey     string `json:"api_key,omitempty" toml:"api_key"`
}

// Room represents a physical meeting room and its schedule
type Room struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Capacity int           `json:"capacity"`
	Settings *RoomSettings `json:"settings,omitempty"`
	Schedule []Meeting     `json:"schedule"`
}

// IsCalendarConfigured reports whether a calendar id has been set
func (r Room) IsCalendarConfigured() bool {
	return r.Settings != nil && r.Settings.CalendarID != ""
}

// WithSchedule returns a copy of the room with its schedule replaced.
// All other fields are carried over unchanged.
func (r Room) WithSchedule(schedule []Meeting) Room {
	out := r.Clone()
	out.Schedule = append([]Meeting(nil), schedule...)
	if out.Schedule == nil {
		out.Schedule = []Meeting{}
	}
	return out
}

// Clone returns a deep copy of the room
func (r Room) Clone() Room {
	out := r
	if r.Settings != nil {
		settings := *r.Settings
		out.Settings = &settings
	}
	out.Schedule = make([]Meeting, len(r.Schedule))
	copy(out.Schedule, r.Schedule)
	return out
}
