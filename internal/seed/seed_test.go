package seed_test

import (
	"testing"
	"time"

	"github.com/navikt/roomkiosk/internal/models"
	"github.com/navikt/roomkiosk/internal/schedule"
	"github.com/navikt/roomkiosk/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockSchedule(t *testing.T) {
	day := time.Date(2025, 5, 8, 15, 42, 0, 0, time.UTC)
	s := seed.MockSchedule(day)

	require.Len(t, s, 4)
	require.NoError(t, schedule.Validate(s))

	assert.Equal(t, "evt-0", s[0].ID)
	assert.Equal(t, "Morning Standup", s[0].Title)
	assert.Equal(t, "Team A", s[0].Host)
	assert.Equal(t, time.Date(2025, 5, 8, 9, 0, 0, 0, time.UTC), s[0].StartTime)
	assert.Equal(t, 30*time.Minute, s[0].Duration())

	assert.Equal(t, "evt-2", s[2].ID)
	assert.Equal(t, time.Date(2025, 5, 8, 13, 30, 0, 0, time.UTC), s[2].StartTime)
	assert.Equal(t, time.Date(2025, 5, 8, 15, 0, 0, 0, time.UTC), s[2].EndTime)

	for _, m := range s {
		assert.Equal(t, models.MeetingKindScheduled, m.Kind)
	}
}

func TestMockScheduleLocation(t *testing.T) {
	loc := time.FixedZone("CET", 60*60)
	s := seed.MockSchedule(time.Date(2025, 1, 2, 23, 30, 0, 0, loc))

	assert.Equal(t, "09:00", schedule.FormatClock(s[0].StartTime))
	assert.Equal(t, loc, s[0].StartTime.Location())
	assert.Equal(t, 2, s[0].StartTime.Day())
}

func TestDefaultRooms(t *testing.T) {
	day := time.Date(2025, 5, 8, 0, 0, 0, 0, time.UTC)
	rooms := seed.DefaultRooms(day)

	require.NotEmpty(t, rooms)
	ids := map[string]bool{}
	for _, r := range rooms {
		assert.False(t, ids[r.ID], "duplicate room id %s", r.ID)
		ids[r.ID] = true
		assert.NotEmpty(t, r.Name)
		assert.Len(t, r.Schedule, 4)
		assert.False(t, r.IsCalendarConfigured())
	}

	// Rooms do not share schedule storage
	rooms[0].Schedule[0].Title = "changed"
	assert.Equal(t, "Morning Standup", rooms[1].Schedule[0].Title)
}
