package schedule_test

import (
	"testing"
	"time"

	"github.com/navikt/roomkiosk/internal/models"
	"github.com/navikt/roomkiosk/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// day is the fixed date every test schedule is placed on
var day = time.Date(2025, 5, 8, 0, 0, 0, 0, time.UTC)

// at returns the test day at hh:mm
func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func meeting(id string, startH, startM, endH, endM int) models.Meeting {
	return models.Meeting{
		ID:        id,
		Title:     "Meeting " + id,
		Host:      "Host " + id,
		StartTime: at(startH, startM),
		EndTime:   at(endH, endM),
		Kind:      models.MeetingKindScheduled,
	}
}

// twoMeetings is the 09:00-09:30 / 10:00-11:00 reference schedule
func twoMeetings() []models.Meeting {
	return []models.Meeting{
		meeting("a", 9, 0, 9, 30),
		meeting("b", 10, 0, 11, 0),
	}
}

func TestIsWithin(t *testing.T) {
	start, end := at(9, 0), at(9, 30)

	tests := []struct {
		name    string
		instant time.Time
		want    bool
	}{
		{"before start", at(8, 59), false},
		{"at start", start, true},
		{"inside", at(9, 15), true},
		{"just before end", end.Add(-time.Nanosecond), true},
		{"at end", end, false},
		{"after end", at(9, 31), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.IsWithin(tt.instant, start, end))
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b [2]time.Time
		want bool
	}{
		{"disjoint", [2]time.Time{at(9, 0), at(9, 30)}, [2]time.Time{at(10, 0), at(11, 0)}, false},
		{"touching", [2]time.Time{at(9, 0), at(10, 0)}, [2]time.Time{at(10, 0), at(11, 0)}, false},
		{"partial", [2]time.Time{at(9, 0), at(10, 10)}, [2]time.Time{at(10, 0), at(11, 0)}, true},
		{"contained", [2]time.Time{at(10, 15), at(10, 30)}, [2]time.Time{at(10, 0), at(11, 0)}, true},
		{"identical", [2]time.Time{at(10, 0), at(11, 0)}, [2]time.Time{at(10, 0), at(11, 0)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.Overlaps(tt.a[0], tt.a[1], tt.b[0], tt.b[1]))
			assert.Equal(t, tt.want, schedule.Overlaps(tt.b[0], tt.b[1], tt.a[0], tt.a[1]))
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", schedule.FormatClock(at(9, 5)))
	assert.Equal(t, "00:00", schedule.FormatClock(at(0, 0)))
	assert.Equal(t, "18:45", schedule.FormatClock(at(18, 45)))

	// The instant's own wall clock is used, with no conversion
	oslo := time.FixedZone("CEST", 2*60*60)
	assert.Equal(t, "14:30", schedule.FormatClock(time.Date(2025, 5, 8, 14, 30, 0, 0, oslo)))
}

func TestMinutesSinceWindowStart(t *testing.T) {
	assert.Equal(t, 0, schedule.MinutesSinceWindowStart(at(7, 0), 7))
	assert.Equal(t, 135, schedule.MinutesSinceWindowStart(at(9, 15), 7))
	assert.Equal(t, -30, schedule.MinutesSinceWindowStart(at(6, 30), 7))
	assert.Equal(t, 720, schedule.MinutesSinceWindowStart(at(19, 0), 7))
}

func TestWindow(t *testing.T) {
	t.Run("Bounds", func(t *testing.T) {
		start, end := schedule.DefaultWindow.Bounds(at(13, 37))
		assert.Equal(t, at(7, 0), start)
		assert.Equal(t, at(19, 0), end)
		assert.Equal(t, 720, schedule.DefaultWindow.Minutes())
	})

	t.Run("Bounds keeps the reference location", func(t *testing.T) {
		loc := time.FixedZone("X", -5*60*60)
		start, _ := schedule.Window{StartHour: 8, EndHour: 17}.Bounds(time.Date(2025, 1, 2, 23, 0, 0, 0, loc))
		assert.Equal(t, time.Date(2025, 1, 2, 8, 0, 0, 0, loc), start)
		assert.Equal(t, loc, start.Location())
	})

	t.Run("Validate", func(t *testing.T) {
		require.NoError(t, schedule.DefaultWindow.Validate())
		require.NoError(t, schedule.Window{StartHour: 0, EndHour: 24}.Validate())
		assert.Error(t, schedule.Window{StartHour: 19, EndHour: 7}.Validate())
		assert.Error(t, schedule.Window{StartHour: 9, EndHour: 9}.Validate())
		assert.Error(t, schedule.Window{StartHour: -1, EndHour: 9}.Validate())
		assert.Error(t, schedule.Window{StartHour: 7, EndHour: 25}.Validate())
	})
}
