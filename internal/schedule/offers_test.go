package schedule_test

import (
	"testing"

	"github.com/navikt/roomkiosk/internal/models"
	"github.com/navikt/roomkiosk/internal/schedule"
	"github.com/stretchr/testify/assert"
)

func TestBookingOffers(t *testing.T) {
	tests := []struct {
		name string
		now  int // minutes after 09:00
		want []schedule.Offer
	}{
		{
			name: "25 minutes until the next meeting",
			now:  35,
			want: []schedule.Offer{{15, true}, {30, false}, {60, false}},
		},
		{
			name: "room is busy",
			now:  10,
			want: []schedule.Offer{{15, false}, {30, false}, {60, false}},
		},
		{
			name: "rest of the day free",
			now:  180,
			want: []schedule.Offer{{15, true}, {30, true}, {60, true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := at(9, tt.now)
			assert.Equal(t, tt.want, schedule.BookingOffers(twoMeetings(), now))
		})
	}
}

func TestExtensionOffers(t *testing.T) {
	s := twoMeetings()

	// 30 minutes between a and b
	assert.Equal(t,
		[]schedule.Offer{{15, true}, {30, true}, {45, false}, {60, false}},
		schedule.ExtensionOffers(s, s[0]))

	// Nothing after b
	assert.Equal(t,
		[]schedule.Offer{{15, true}, {30, true}, {45, true}, {60, true}},
		schedule.ExtensionOffers(s, s[1]))

	// Back-to-back meetings leave no room
	tight := []models.Meeting{meeting("a", 9, 0, 10, 0), meeting("b", 10, 0, 11, 0)}
	for _, offer := range schedule.ExtensionOffers(tight, tight[0]) {
		assert.False(t, offer.Available)
	}
}
