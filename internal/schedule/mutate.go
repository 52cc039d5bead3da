package schedule

import (
	"fmt"
	"time"

	"github.com/navikt/roomkiosk/internal/models"
)

// Defaults for meetings created from the kiosk
const (
	AdHocTitle = "Ad-hoc Booking"
	AdHocHost  = "Walk-in"
)

// MaxDurationMinutes bounds a single booking or extension to one day
const MaxDurationMinutes = 24 * 60

func checkDuration(kind string, minutes int) error {
	if minutes <= 0 || minutes > MaxDurationMinutes {
		return fmt.Errorf("%w: %s of %d minutes", ErrInvalidDuration, kind, minutes)
	}
	return nil
}

// QuickBook adds an ad-hoc meeting over [now, now+minutes). The booking is
// rejected if it would overlap any meeting in the schedule.
func QuickBook(schedule []models.Meeting, now time.Time, minutes int, id string) ([]models.Meeting, models.Meeting, error) {
	if err := checkDuration("booking", minutes); err != nil {
		return schedule, models.Meeting{}, err
	}
	if id == "" {
		return schedule, models.Meeting{}, fmt.Errorf("%w: booking needs an id", ErrInvalidSchedule)
	}

	booking := models.Meeting{
		ID:        id,
		Title:     AdHocTitle,
		Host:      AdHocHost,
		StartTime: now,
		EndTime:   now.Add(time.Duration(minutes) * time.Minute),
		Kind:      models.MeetingKindAdHoc,
	}

	for _, m := range schedule {
		if m.ID == id {
			return schedule, models.Meeting{}, fmt.Errorf("%w: meeting id %q already in use", ErrInvalidSchedule, id)
		}
		if Overlaps(booking.StartTime, booking.EndTime, m.StartTime, m.EndTime) {
			return schedule, models.Meeting{}, fmt.Errorf("%w: %s-%s collides with %q (%s-%s)",
				ErrBookingConflict,
				FormatClock(booking.StartTime), FormatClock(booking.EndTime),
				m.ID, FormatClock(m.StartTime), FormatClock(m.EndTime))
		}
	}

	out := make([]models.Meeting, 0, len(schedule)+1)
	out = append(out, schedule...)
	out = append(out, booking)
	return Sorted(out), booking, nil
}

// EndEarly ends the meeting with the given id at now. Ending a meeting that
// is already over is a no-op; ending one at its very start removes it.
func EndEarly(schedule []models.Meeting, now time.Time, id string) ([]models.Meeting, error) {
	idx := indexOf(schedule, id)
	if idx < 0 {
		return schedule, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	m := schedule[idx]
	if !now.Before(m.EndTime) {
		return clone(schedule), nil
	}
	if now.Before(m.StartTime) {
		return schedule, fmt.Errorf("%w: meeting %q has not started", ErrNotFound, id)
	}

	out := make([]models.Meeting, 0, len(schedule))
	for i, other := range schedule {
		if i != idx {
			out = append(out, other)
			continue
		}
		if now.Equal(m.StartTime) {
			continue
		}
		m.EndTime = now
		out = append(out, m)
	}
	return out, nil
}

// Extend pushes the end of the meeting with the given id by extraMinutes.
// It is rejected when the new end would run past the start of the next meeting.
func Extend(schedule []models.Meeting, now time.Time, id string, extraMinutes int) ([]models.Meeting, error) {
	if err := checkDuration("extension", extraMinutes); err != nil {
		return schedule, err
	}

	idx := indexOf(schedule, id)
	if idx < 0 {
		return schedule, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	m := schedule[idx]
	if !now.Before(m.EndTime) {
		return schedule, fmt.Errorf("%w: meeting %q ended at %s", ErrNotFound, id, FormatClock(m.EndTime))
	}

	newEnd := m.EndTime.Add(time.Duration(extraMinutes) * time.Minute)
	if next, ok := nextAfter(schedule, m); ok && newEnd.After(next.StartTime) {
		return schedule, fmt.Errorf("%w: new end %s is after %q starts at %s",
			ErrExtensionConflict, FormatClock(newEnd), next.ID, FormatClock(next.StartTime))
	}
	for i, other := range schedule {
		if i != idx && Overlaps(m.EndTime, newEnd, other.StartTime, other.EndTime) {
			return schedule, fmt.Errorf("%w: new end %s collides with %q",
				ErrExtensionConflict, FormatClock(newEnd), other.ID)
		}
	}

	out := clone(schedule)
	out[idx].EndTime = newEnd
	out[idx].Kind = models.MeetingKindExtended
	return out, nil
}

// Validate checks that every meeting is well formed and that no two overlap
func Validate(schedule []models.Meeting) error {
	sorted := Sorted(schedule)
	seen := make(map[string]struct{}, len(sorted))
	for i, m := range sorted {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
		}
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("%w: duplicate meeting id %q", ErrInvalidSchedule, m.ID)
		}
		seen[m.ID] = struct{}{}
		if i > 0 && sorted[i-1].EndTime.After(m.StartTime) {
			return fmt.Errorf("%w: %q overlaps %q", ErrInvalidSchedule, sorted[i-1].ID, m.ID)
		}
	}
	return nil
}

func indexOf(schedule []models.Meeting, id string) int {
	for i, m := range schedule {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func clone(schedule []models.Meeting) []models.Meeting {
	out := make([]models.Meeting, len(schedule))
	copy(out, schedule)
	return out
}
