// Package service applies kiosk actions to rooms and keeps the stored
// schedules consistent
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/navikt/roomkiosk/internal/calendar"
	"github.com/navikt/roomkiosk/internal/logging"
	"github.com/navikt/roomkiosk/internal/models"
	"github.com/navikt/roomkiosk/internal/repository"
	"github.com/navikt/roomkiosk/internal/schedule"
)

// ErrInvalidSettings is returned when a settings update is rejected
var ErrInvalidSettings = errors.New("invalid room settings")

// Clock returns the current instant
type Clock func() time.Time

// RoomUpdateCallback is called with the stored room after every change
type RoomUpdateCallback func(*models.Room)

// Options configures a RoomService. Zero values fall back to defaults.
type Options struct {
	Timeline schedule.Timeline
	Clock    Clock
	NewID    func() string
	Source   calendar.Source
	Logger   *slog.Logger
}

// RoomService is the only writer of room schedules. Changes to one room are
// applied one at a time: load, mutate, save, notify.
type RoomService struct {
	repo     repository.Repository
	source   calendar.Source
	timeline schedule.Timeline
	clock    Clock
	newID    func() string
	logger   *slog.Logger

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	callbacksMu     sync.RWMutex
	updateCallbacks []RoomUpdateCallback
}

// NewRoomService creates a RoomService on top of the repository
func NewRoomService(repo repository.Repository, opts Options) *RoomService {
	if opts.Timeline.Window == (schedule.Window{}) {
		opts.Timeline.Window = schedule.DefaultWindow
	}
	opts.Timeline = schedule.NewTimeline(opts.Timeline.Window, opts.Timeline.MaxFreeBlock)
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Source == nil {
		opts.Source = calendar.NewMockSource(opts.Logger)
	}

	return &RoomService{
		repo:     repo,
		source:   opts.Source,
		timeline: opts.Timeline,
		clock:    opts.Clock,
		newID:    opts.NewID,
		logger:   opts.Logger,
		locks:    make(map[string]*sync.Mutex),
	}
}

// RegisterUpdateCallback registers a callback function to be called when room data changes
func (s *RoomService) RegisterUpdateCallback(callback RoomUpdateCallback) {
	s.callbacksMu.Lock()
	defer s.callbacksMu.Unlock()
	s.updateCallbacks = append(s.updateCallbacks, callback)
}

// notifyUpdate calls all registered callbacks with the updated room
func (s *RoomService) notifyUpdate(room *models.Room) {
	s.callbacksMu.RLock()
	callbacks := append([]RoomUpdateCallback(nil), s.updateCallbacks...)
	s.callbacksMu.RUnlock()

	for _, callback := range callbacks {
		out := room.Clone()
		callback(&out)
	}
}

// Now returns the service clock reading
func (s *RoomService) Now() time.Time {
	return s.clock()
}

// Timeline returns the timeline configuration used for statuses
func (s *RoomService) Timeline() schedule.Timeline {
	return s.timeline
}

// Ping checks the room store
func (s *RoomService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// ListRooms returns all rooms ordered by id
func (s *RoomService) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return s.repo.ListRooms(ctx)
}

// GetRoom retrieves a room by id
func (s *RoomService) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	return s.repo.GetRoom(ctx, roomID)
}

// Status derives the current status of a room
func (s *RoomService) Status(ctx context.Context, roomID string) (*RoomStatus, error) {
	room, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return s.StatusOf(room, s.clock()), nil
}

// StatusOf derives the status of an already loaded room at now
func (s *RoomService) StatusOf(room *models.Room, now time.Time) *RoomStatus {
	return BuildStatus(room, now, s.timeline)
}

// Statuses derives the status of every room at the same instant
func (s *RoomService) Statuses(ctx context.Context) ([]*RoomStatus, error) {
	rooms, err := s.repo.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	statuses := make([]*RoomStatus, 0, len(rooms))
	for _, room := range rooms {
		statuses = append(statuses, s.StatusOf(room, now))
	}
	return statuses, nil
}

// Summaries returns the condensed status of every room
func (s *RoomService) Summaries(ctx context.Context) ([]models.RoomSummary, error) {
	statuses, err := s.Statuses(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.RoomSummary, 0, len(statuses))
	for _, status := range statuses {
		summaries = append(summaries, status.Summary())
	}
	return summaries, nil
}

// QuickBook books the room from now for the given number of minutes
func (s *RoomService) QuickBook(ctx context.Context, roomID string, minutes int) (models.Meeting, error) {
	var booking models.Meeting
	_, err := s.mutate(ctx, roomID, "quick-book", func(current []models.Meeting, now time.Time) ([]models.Meeting, error) {
		next, m, err := schedule.QuickBook(current, now, minutes, s.newID())
		booking = m
		return next, err
	})
	return booking, err
}

// EndEarly ends a meeting in the room now
func (s *RoomService) EndEarly(ctx context.Context, roomID, meetingID string) (*models.Room, error) {
	return s.mutate(ctx, roomID, "end-early", func(current []models.Meeting, now time.Time) ([]models.Meeting, error) {
		return schedule.EndEarly(current, now, meetingID)
	})
}

// EndCurrent ends whichever meeting is running in the room
func (s *RoomService) EndCurrent(ctx context.Context, roomID string) (*models.Room, error) {
	return s.mutate(ctx, roomID, "end-current", func(current []models.Meeting, now time.Time) ([]models.Meeting, error) {
		m, ok := schedule.FindCurrent(current, now)
		if !ok {
			return current, fmt.Errorf("%w: no meeting in progress", schedule.ErrNotFound)
		}
		return schedule.EndEarly(current, now, m.ID)
	})
}

// Extend pushes the end of a meeting in the room
func (s *RoomService) Extend(ctx context.Context, roomID, meetingID string, minutes int) (*models.Room, error) {
	return s.mutate(ctx, roomID, "extend", func(current []models.Meeting, now time.Time) ([]models.Meeting, error) {
		return schedule.Extend(current, now, meetingID, minutes)
	})
}

// ExtendCurrent extends whichever meeting is running in the room
func (s *RoomService) ExtendCurrent(ctx context.Context, roomID string, minutes int) (*models.Room, error) {
	return s.mutate(ctx, roomID, "extend-current", func(current []models.Meeting, now time.Time) ([]models.Meeting, error) {
		m, ok := schedule.FindCurrent(current, now)
		if !ok {
			return current, fmt.Errorf("%w: no meeting in progress", schedule.ErrNotFound)
		}
		return schedule.Extend(current, now, m.ID, minutes)
	})
}

// ResetSchedule replaces the room's schedule with a fresh copy from the calendar source
func (s *RoomService) ResetSchedule(ctx context.Context, roomID string) (*models.Room, error) {
	return s.update(ctx, roomID, "reset", func(room models.Room, now time.Time) (models.Room, error) {
		meetings, err := s.source.Meetings(ctx, room, now)
		if err != nil {
			return room, fmt.Errorf("failed to load calendar: %w", err)
		}
		if err := schedule.Validate(meetings); err != nil {
			return room, err
		}
		return room.WithSchedule(schedule.Sorted(meetings)), nil
	})
}

// ClearSchedule removes every meeting from the room
func (s *RoomService) ClearSchedule(ctx context.Context, roomID string) (*models.Room, error) {
	return s.mutate(ctx, roomID, "clear", func([]models.Meeting, time.Time) ([]models.Meeting, error) {
		return []models.Meeting{}, nil
	})
}

// SettingsUpdate holds the admin-editable room fields. Nil fields are left unchanged.
type SettingsUpdate struct {
	Name     *string              `json:"name,omitempty"`
	Capacity *int                 `json:"capacity,omitempty"`
	Calendar *models.RoomSettings `json:"calendar,omitempty"`
}

// UpdateSettings applies an admin settings change to the room
func (s *RoomService) UpdateSettings(ctx context.Context, roomID string, change SettingsUpdate) (*models.Room, error) {
	return s.update(ctx, roomID, "settings", func(room models.Room, _ time.Time) (models.Room, error) {
		out := room.Clone()
		if change.Name != nil {
			if *change.Name == "" {
				return room, fmt.Errorf("%w: name cannot be empty", ErrInvalidSettings)
			}
			out.Name = *change.Name
		}
		if change.Capacity != nil {
			if *change.Capacity < 0 {
				return room, fmt.Errorf("%w: capacity cannot be negative", ErrInvalidSettings)
			}
			out.Capacity = *change.Capacity
		}
		if change.Calendar != nil {
			settings := *change.Calendar
			out.Settings = &settings
		}
		return out, nil
	})
}

// SeedRooms stores the given rooms unless the store already has them.
// Rooms without meetings are filled from the calendar source. It returns the
// number of rooms added.
func (s *RoomService) SeedRooms(ctx context.Context, rooms []models.Room) (int, error) {
	now := s.clock()
	added := 0
	for _, room := range rooms {
		_, err := s.repo.GetRoom(ctx, room.ID)
		if err == nil {
			s.logger.Debug("room already stored, not seeding", "room_id", logging.Sanitize(room.ID))
			continue
		}
		if !errors.Is(err, models.ErrRoomNotFound) {
			return added, err
		}

		seeded := room.Clone()
		if len(seeded.Schedule) == 0 {
			meetings, err := s.source.Meetings(ctx, seeded, now)
			if err != nil {
				return added, fmt.Errorf("failed to load calendar for %q: %w", room.ID, err)
			}
			seeded = seeded.WithSchedule(schedule.Sorted(meetings))
		}
		if err := schedule.Validate(seeded.Schedule); err != nil {
			return added, fmt.Errorf("room %q: %w", room.ID, err)
		}
		if err := s.repo.SaveRoom(ctx, &seeded); err != nil {
			return added, err
		}
		added++
	}

	s.logger.Info("rooms seeded", "added", added, "configured", len(rooms))
	return added, nil
}

// mutate runs a schedule mutation against the stored room
func (s *RoomService) mutate(ctx context.Context, roomID, action string, fn func([]models.Meeting, time.Time) ([]models.Meeting, error)) (*models.Room, error) {
	return s.update(ctx, roomID, action, func(room models.Room, now time.Time) (models.Room, error) {
		next, err := fn(room.Schedule, now)
		if err != nil {
			return room, err
		}
		return room.WithSchedule(next), nil
	})
}

// update loads the room, applies fn and stores the result while holding
// the room's lock. Callbacks run after the lock is released.
func (s *RoomService) update(ctx context.Context, roomID, action string, fn func(models.Room, time.Time) (models.Room, error)) (*models.Room, error) {
	updated, err := func() (*models.Room, error) {
		lock := s.lockFor(roomID)
		lock.Lock()
		defer lock.Unlock()

		room, err := s.repo.GetRoom(ctx, roomID)
		if err != nil {
			return nil, err
		}

		next, err := fn(*room, s.clock())
		if err != nil {
			return nil, err
		}
		if err := s.repo.SaveRoom(ctx, &next); err != nil {
			return nil, fmt.Errorf("failed to save room: %w", err)
		}
		return &next, nil
	}()

	log := s.logger.With("room_id", logging.Sanitize(roomID), "action", action)
	if err != nil {
		log.Info("room change rejected", "error", err)
		return nil, err
	}

	log.Info("room updated", "meetings", len(updated.Schedule))
	s.notifyUpdate(updated)
	return updated, nil
}

func (s *RoomService) lockFor(roomID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, ok := s.locks[roomID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[roomID] = lock
	}
	return lock
}
