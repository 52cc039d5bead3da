package service

import (
	"time"

	"github.com/navikt/roomkiosk/internal/models"
	"github.com/navikt/roomkiosk/internal/schedule"
)

// MeetingView is a meeting with its clock strings precomputed for display
type MeetingView struct {
	models.Meeting
	StartClock string `json:"start_clock"`
	EndClock   string `json:"end_clock"`
}

func newMeetingView(m models.Meeting) *MeetingView {
	return &MeetingView{
		Meeting:    m,
		StartClock: schedule.FormatClock(m.StartTime),
		EndClock:   schedule.FormatClock(m.EndTime),
	}
}

// RoomStatus is everything a kiosk screen needs to render a room at one instant
type RoomStatus struct {
	RoomID          string           `json:"room_id"`
	RoomName        string           `json:"room_name"`
	Capacity        int              `json:"capacity"`
	Configured      bool             `json:"calendar_configured"`
	State           schedule.State   `json:"state"`
	Now             time.Time        `json:"now"`
	Clock           string           `json:"clock"`
	Current         *MeetingView     `json:"current,omitempty"`
	Next            *MeetingView     `json:"next,omitempty"`
	WindowStart     time.Time        `json:"window_start"`
	WindowEnd       time.Time        `json:"window_end"`
	NowOffset       int              `json:"now_offset_minutes"`
	Timeline        []schedule.Block `json:"timeline"`
	BookingOffers   []schedule.Offer `json:"booking_offers,omitempty"`
	ExtensionOffers []schedule.Offer `json:"extension_offers,omitempty"`
	MeetingsLoaded  int              `json:"meetings_loaded"`
}

// BuildStatus derives the status of room at now with the given timeline.
// Booking offers are only set while the room is free and extension offers
// only while it is busy.
func BuildStatus(room *models.Room, now time.Time, timeline schedule.Timeline) *RoomStatus {
	windowStart, windowEnd := timeline.Window.Bounds(now)
	status := &RoomStatus{
		RoomID:         room.ID,
		RoomName:       room.Name,
		Capacity:       room.Capacity,
		Configured:     room.IsCalendarConfigured(),
		State:          schedule.Status(room.Schedule, now),
		Now:            now,
		Clock:          schedule.FormatClock(now),
		WindowStart:    windowStart,
		WindowEnd:      windowEnd,
		NowOffset:      timeline.NowOffset(now),
		Timeline:       timeline.Blocks(room.Schedule, now),
		MeetingsLoaded: len(room.Schedule),
	}

	if current, ok := schedule.FindCurrent(room.Schedule, now); ok {
		status.Current = newMeetingView(current)
		status.ExtensionOffers = schedule.ExtensionOffers(room.Schedule, current)
	} else {
		status.BookingOffers = schedule.BookingOffers(room.Schedule, now)
	}
	if next, ok := schedule.FindNext(room.Schedule, now); ok {
		status.Next = newMeetingView(next)
	}
	return status
}

// Summary condenses the status for room listings
func (s *RoomStatus) Summary() models.RoomSummary {
	summary := models.RoomSummary{
		RoomID:         s.RoomID,
		RoomName:       s.RoomName,
		Capacity:       s.Capacity,
		Busy:           s.State == schedule.StateBusy,
		Configured:     s.Configured,
		MeetingsLoaded: s.MeetingsLoaded,
	}
	if s.Current != nil {
		end := s.Current.EndTime
		summary.CurrentTitle = s.Current.Title
		summary.BusyUntil = &end
	}
	if s.Next != nil {
		start := s.Next.StartTime
		summary.NextTitle = s.Next.Title
		summary.NextStartTime = &start
	}
	return summary
}
