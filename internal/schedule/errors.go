package schedule

import "errors"

// Errors returned by the mutator. A rejected operation never changes the
// schedule it was given.
var (
	ErrNotFound          = errors.New("schedule: meeting not found")
	ErrBookingConflict   = errors.New("schedule: booking overlaps an existing meeting")
	ErrExtensionConflict = errors.New("schedule: extension overlaps the next meeting")
	ErrInvalidDuration   = errors.New("schedule: duration must be positive")
	ErrInvalidSchedule   = errors.New("schedule: invalid schedule")
)
