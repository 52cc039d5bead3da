// Package seed generates the demo schedules and rooms a kiosk starts with
package seed

import (
	"fmt"
	"time"

	"github.com/navikt/roomkiosk/internal/models"
)

type template struct {
	title   string
	host    string
	hour    int
	minute  int
	minutes int
}

var mockDay = []template{
	{"Morning Standup", "Team A", 9, 0, 30},
	{"Client Briefing", "John Smith", 10, 0, 60},
	{"Design Review", "Sarah Jones", 13, 30, 90},
	{"Tech Sync", "Engineering", 16, 0, 45},
}

// MockSchedule returns the fixed demo schedule placed on day's date, in day's location
func MockSchedule(day time.Time) []models.Meeting {
	year, month, date := day.Date()
	schedule := make([]models.Meeting, 0, len(mockDay))
	for i, t := range mockDay {
		start := time.Date(year, month, date, t.hour, t.minute, 0, 0, day.Location())
		schedule = append(schedule, models.Meeting{
			ID:        fmt.Sprintf("evt-%d", i),
			Title:     t.title,
			Host:      t.host,
			StartTime: start,
			EndTime:   start.Add(time.Duration(t.minutes) * time.Minute),
			Kind:      models.MeetingKindScheduled,
		})
	}
	return schedule
}

// DefaultRooms returns the demo rooms used when no rooms file is configured
func DefaultRooms(day time.Time) []models.Room {
	return []models.Room{
		{
			ID:       "conf-a",
			Name:     "Conference Room A",
			Capacity: 8,
			Schedule: MockSchedule(day),
		},
		{
			ID:       "huddle-1",
			Name:     "Huddle Room 1",
			Capacity: 4,
			Schedule: MockSchedule(day),
		},
	}
}
