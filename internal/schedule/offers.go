package schedule

import (
	"time"

	"github.com/navikt/roomkiosk/internal/models"
)

var (
	// BookingOptions are the quick-book durations offered on a free room, in minutes
	BookingOptions = []int{15, 30, 60}
	// ExtensionOptions are the extension durations offered on a busy room, in minutes
	ExtensionOptions = []int{15, 30, 45, 60}
)

// MaxExtensionMinutes bounds extensions when no meeting follows
const MaxExtensionMinutes = 180

// Offer is a duration the kiosk can offer and whether it currently fits
type Offer struct {
	Minutes   int  `json:"minutes"`
	Available bool `json:"available"`
}

// BookingOffers evaluates the quick-book options at now. Nothing fits while
// a meeting is running; otherwise an option fits if it ends by the next start.
func BookingOffers(schedule []models.Meeting, now time.Time) []Offer {
	_, busy := FindCurrent(schedule, now)
	limit := -1
	if next, ok := FindNext(schedule, now); ok {
		limit = int(next.StartTime.Sub(now) / time.Minute)
	}

	offers := make([]Offer, 0, len(BookingOptions))
	for _, minutes := range BookingOptions {
		offers = append(offers, Offer{
			Minutes:   minutes,
			Available: !busy && (limit < 0 || minutes <= limit),
		})
	}
	return offers
}

// ExtensionOffers evaluates the extension options for meeting m against the
// gap between its end and the next meeting
func ExtensionOffers(schedule []models.Meeting, m models.Meeting) []Offer {
	limit := MaxExtensionMinutes
	if next, ok := nextAfter(schedule, m); ok {
		limit = int(next.StartTime.Sub(m.EndTime) / time.Minute)
	}

	offers := make([]Offer, 0, len(ExtensionOptions))
	for _, minutes := range ExtensionOptions {
		offers = append(offers, Offer{
			Minutes:   minutes,
			Available: minutes <= limit,
		})
	}
	return offers
}
