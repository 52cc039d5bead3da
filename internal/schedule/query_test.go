package schedule_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/navikt/roomkiosk/internal/models"
	"github.com/navikt/roomkiosk/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCurrentAndNext(t *testing.T) {
	s := twoMeetings()

	t.Run("Between meetings", func(t *testing.T) {
		_, ok := schedule.FindCurrent(s, at(9, 45))
		assert.False(t, ok)

		next, ok := schedule.FindNext(s, at(9, 45))
		require.True(t, ok)
		assert.Equal(t, "b", next.ID)
	})

	t.Run("At a start boundary", func(t *testing.T) {
		current, ok := schedule.FindCurrent(s, at(9, 0))
		require.True(t, ok)
		assert.Equal(t, "a", current.ID)

		// A meeting starting exactly now is current, not next
		next, ok := schedule.FindNext(s, at(9, 0))
		require.True(t, ok)
		assert.Equal(t, "b", next.ID)
	})

	t.Run("At an end boundary", func(t *testing.T) {
		_, ok := schedule.FindCurrent(s, at(9, 30))
		assert.False(t, ok)
		assert.Equal(t, schedule.StateFree, schedule.Status(s, at(9, 30)))
		assert.Equal(t, schedule.StateBusy, schedule.Status(s, at(10, 30)))
	})

	t.Run("After the last meeting", func(t *testing.T) {
		_, ok := schedule.FindCurrent(s, at(12, 0))
		assert.False(t, ok)
		_, ok = schedule.FindNext(s, at(12, 0))
		assert.False(t, ok)
	})

	t.Run("Unsorted input", func(t *testing.T) {
		reversed := []models.Meeting{s[1], s[0]}
		next, ok := schedule.FindNext(reversed, at(8, 0))
		require.True(t, ok)
		assert.Equal(t, "a", next.ID)
	})

	t.Run("Empty schedule", func(t *testing.T) {
		_, ok := schedule.FindCurrent(nil, at(9, 0))
		assert.False(t, ok)
		_, ok = schedule.FindNext(nil, at(9, 0))
		assert.False(t, ok)
	})
}

func TestFindNextTieBreak(t *testing.T) {
	s := []models.Meeting{
		meeting("z", 14, 0, 15, 0),
		meeting("m", 14, 0, 14, 30),
		meeting("q", 16, 0, 17, 0),
	}

	next, ok := schedule.FindNext(s, at(13, 0))
	require.True(t, ok)
	assert.Equal(t, "m", next.ID)
}

func TestFindCurrentOverlapping(t *testing.T) {
	// Violates the no-overlap invariant; the earliest start must win
	s := []models.Meeting{
		meeting("late", 10, 0, 11, 0),
		meeting("early", 9, 30, 10, 30),
	}

	current, ok := schedule.FindCurrent(s, at(10, 15))
	require.True(t, ok)
	assert.Equal(t, "early", current.ID)
}

func TestSorted(t *testing.T) {
	s := []models.Meeting{
		meeting("c", 11, 0, 12, 0),
		meeting("b", 9, 0, 9, 30),
		meeting("a", 9, 0, 9, 15),
	}

	sorted := schedule.Sorted(s)
	ids := []string{sorted[0].ID, sorted[1].ID, sorted[2].ID}
	assert.Equal(t, []string{"a", "b", "c"}, ids)

	// Input order is untouched
	assert.Equal(t, "c", s[0].ID)
}

// randomSchedule builds a non-overlapping schedule between 06:00 and 20:00
func randomSchedule(rng *rand.Rand) []models.Meeting {
	var s []models.Meeting
	cursor := at(6, 0)
	limit := at(20, 0)
	for i := 0; ; i++ {
		start := cursor.Add(time.Duration(rng.Intn(90)) * time.Minute)
		end := start.Add(time.Duration(1+rng.Intn(120)) * time.Minute)
		if end.After(limit) {
			break
		}
		s = append(s, models.Meeting{
			ID:        fmt.Sprintf("m%03d", i),
			StartTime: start,
			EndTime:   end,
		})
		cursor = end
	}
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
	return s
}

func TestQueryProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		s := randomSchedule(rng)
		now := at(6, 0).Add(time.Duration(rng.Intn(14*60)) * time.Minute)

		// At most one meeting contains now, and FindCurrent returns it
		var containing []models.Meeting
		for _, m := range s {
			if schedule.IsWithin(now, m.StartTime, m.EndTime) {
				containing = append(containing, m)
			}
		}
		require.LessOrEqual(t, len(containing), 1)

		current, ok := schedule.FindCurrent(s, now)
		if len(containing) == 0 {
			assert.False(t, ok)
		} else {
			require.True(t, ok)
			assert.Equal(t, containing[0].ID, current.ID)
		}

		// FindNext returns the minimal start strictly after now
		next, ok := schedule.FindNext(s, now)
		for _, m := range s {
			if m.StartTime.After(now) {
				require.True(t, ok)
				assert.False(t, m.StartTime.Before(next.StartTime))
			}
		}
		if ok {
			assert.True(t, next.StartTime.After(now))
		}
	}
}
