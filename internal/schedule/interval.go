// Package schedule answers what is happening in a room now, what comes next,
// and how a day should be split into busy and free blocks. It also applies
// the walk-in mutations (quick-book, end early, extend) to a schedule.
//
// Every function is pure: the current instant is always passed in, inputs are
// never modified, and changed schedules are returned as new slices.
package schedule

import (
	"fmt"
	"time"
)

// IsWithin reports whether instant falls in the half-open interval [start, end)
func IsWithin(instant, start, end time.Time) bool {
	return !instant.Before(start) && instant.Before(end)
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share any instant
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FormatClock renders the wall clock of instant as 24-hour HH:MM
func FormatClock(instant time.Time) string {
	return instant.Format("15:04")
}

// MinutesSinceWindowStart returns the signed number of wall-clock minutes
// between windowStartHour:00 and instant on the same day.
func MinutesSinceWindowStart(instant time.Time, windowStartHour int) int {
	return instant.Hour()*60 + instant.Minute() - windowStartHour*60
}

// Window is the portion of the day the timeline displays, in whole hours
type Window struct {
	StartHour int
	EndHour   int
}

// DefaultWindow is the 07:00-19:00 day used when nothing else is configured
var DefaultWindow = Window{StartHour: 7, EndHour: 19}

// Validate checks that the window is a non-empty range inside one day
func (w Window) Validate() error {
	if w.StartHour < 0 || w.EndHour > 24 {
		return fmt.Errorf("window %02d-%02d must lie within 00-24", w.StartHour, w.EndHour)
	}
	if w.StartHour >= w.EndHour {
		return fmt.Errorf("window start hour %d must be before end hour %d", w.StartHour, w.EndHour)
	}
	return nil
}

// Bounds anchors the window on the calendar day of ref, in ref's location
func (w Window) Bounds(ref time.Time) (time.Time, time.Time) {
	y, m, d := ref.Date()
	loc := ref.Location()
	return time.Date(y, m, d, w.StartHour, 0, 0, 0, loc), time.Date(y, m, d, w.EndHour, 0, 0, 0, loc)
}

// Minutes returns the length of the window in minutes
func (w Window) Minutes() int {
	return (w.EndHour - w.StartHour) * 60
}
