package schedule

import (
	"sort"
	"time"

	"github.com/navikt/roomkiosk/internal/models"
)

// State is the derived occupancy of a room at an instant
type State string

const (
	StateFree State = "free"
	StateBusy State = "busy"
)

// Sorted returns a copy of the schedule ordered by start time, ties by id
func Sorted(schedule []models.Meeting) []models.Meeting {
	out := make([]models.Meeting, len(schedule))
	copy(out, schedule)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func less(a, b models.Meeting) bool {
	if !a.StartTime.Equal(b.StartTime) {
		return a.StartTime.Before(b.StartTime)
	}
	return a.ID < b.ID
}

// FindCurrent returns the meeting in progress at now. If meetings overlap,
// the earliest-starting match wins.
func FindCurrent(schedule []models.Meeting, now time.Time) (models.Meeting, bool) {
	var (
		found models.Meeting
		ok    bool
	)
	for _, m := range schedule {
		if !IsWithin(now, m.StartTime, m.EndTime) {
			continue
		}
		if !ok || less(m, found) {
			found, ok = m, true
		}
	}
	return found, ok
}

// FindNext returns the meeting with the smallest start strictly after now,
// ties broken by the smallest id.
func FindNext(schedule []models.Meeting, now time.Time) (models.Meeting, bool) {
	var (
		found models.Meeting
		ok    bool
	)
	for _, m := range schedule {
		if !m.StartTime.After(now) {
			continue
		}
		if !ok || less(m, found) {
			found, ok = m, true
		}
	}
	return found, ok
}

// Status derives whether the room is busy at now
func Status(schedule []models.Meeting, now time.Time) State {
	if _, ok := FindCurrent(schedule, now); ok {
		return StateBusy
	}
	return StateFree
}

// nextAfter returns the earliest meeting other than m that starts at or after m's start
func nextAfter(schedule []models.Meeting, m models.Meeting) (models.Meeting, bool) {
	var (
		found models.Meeting
		ok    bool
	)
	for _, other := range schedule {
		if other.ID == m.ID || other.StartTime.Before(m.StartTime) {
			continue
		}
		if !ok || less(other, found) {
			found, ok = other, true
		}
	}
	return found, ok
}
