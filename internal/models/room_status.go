package models

import "time"

// RoomSummary is the condensed status of a room used in room listings
type RoomSummary struct {
	RoomID         string     `json:"room_id"`
	RoomName       string     `json:"room_name"`
	Capacity       int        `json:"capacity"`
	Busy           bool       `json:"busy"`
	Configured     bool       `json:"calendar_configured"`
	CurrentTitle   string     `json:"current_title,omitempty"`
	BusyUntil      *time.Time `json:"busy_until,omitempty"`
	NextTitle      string     `json:"next_title,omitempty"`
	NextStartTime  *time.Time `json:"next_start_time,omitempty"`
	MeetingsLoaded int        `json:"meetings_loaded"`
}
