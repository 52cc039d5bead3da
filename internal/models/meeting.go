package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// MeetingKind tags where a meeting came from. It only affects display.
type MeetingKind int

const (
	MeetingKindScheduled MeetingKind = iota
	MeetingKindAdHoc
	MeetingKindExtended
)

var meetingKindNames = [...]string{"scheduled", "ad-hoc", "extended"}

// String returns the string representation of a meeting kind
func (k MeetingKind) String() string {
	if k < 0 || int(k) >= len(meetingKindNames) {
		return fmt.Sprintf("MeetingKind(%d)", int(k))
	}
	return meetingKindNames[k]
}

// ParseMeetingKind converts a kind name back into a MeetingKind
func ParseMeetingKind(s string) (MeetingKind, error) {
	for i, name := range meetingKindNames {
		if name == s {
			return MeetingKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown meeting kind %q", s)
}

// MarshalJSON encodes the kind by name
func (k MeetingKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind name
func (k *MeetingKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMeetingKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ErrInvalidMeeting is returned by Validate for malformed meetings
var ErrInvalidMeeting = errors.New("invalid meeting")

// Meeting is a scheduled occupation of a room over [StartTime, EndTime)
type Meeting struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Host      string      `json:"host"`
	StartTime time.Time   `json:"start_time"`
	EndTime   time.Time   `json:"end_time"`
	Kind      MeetingKind `json:"kind"`
}

// Duration returns the length of the meeting
func (m Meeting) Duration() time.Duration {
	return m.EndTime.Sub(m.StartTime)
}

// Validate checks that the meeting has an id and a strictly positive duration
func (m Meeting) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidMeeting)
	}
	if !m.StartTime.Before(m.EndTime) {
		return fmt.Errorf("%w: meeting %q must start before it ends", ErrInvalidMeeting, m.ID)
	}
	return nil
}
