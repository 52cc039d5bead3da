package schedule

import (
	"time"

	"github.com/navikt/roomkiosk/internal/models"
)

// DefaultMaxFreeBlock caps free blocks so each renders as its own labeled segment
const DefaultMaxFreeBlock = 15 * time.Minute

// BlockKind distinguishes occupied from open timeline segments
type BlockKind string

const (
	BlockBusy BlockKind = "busy"
	BlockFree BlockKind = "free"
)

// Block is one segment [Start, End) of a rendered timeline
type Block struct {
	Kind      BlockKind `json:"kind"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	MeetingID string    `json:"meeting_id,omitempty"`
	Title     string    `json:"title,omitempty"`
}

// Duration returns the length of the block
func (b Block) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// Partition splits [windowStart, windowEnd) into contiguous busy and free
// blocks. Busy blocks follow the meetings, clipped to the window; a meeting
// already running at the cursor is cut at the cursor rather than dropped.
// Free blocks are at most maxFree long when maxFree is positive.
func Partition(schedule []models.Meeting, windowStart, windowEnd time.Time, maxFree time.Duration) []Block {
	if !windowStart.Before(windowEnd) {
		return nil
	}

	sorted := Sorted(schedule)
	var blocks []Block
	cursor := windowStart

	for cursor.Before(windowEnd) {
		if m, ok := FindCurrent(sorted, cursor); ok {
			end := earliest(m.EndTime, windowEnd)
			blocks = append(blocks, Block{
				Kind:      BlockBusy,
				Start:     cursor,
				End:       end,
				MeetingID: m.ID,
				Title:     m.Title,
			})
			cursor = end
			continue
		}

		bound := windowEnd
		if next, ok := FindNext(sorted, cursor); ok {
			bound = earliest(next.StartTime, bound)
		}
		if maxFree > 0 && bound.Sub(cursor) > maxFree {
			bound = cursor.Add(maxFree)
		}
		blocks = append(blocks, Block{
			Kind:  BlockFree,
			Start: cursor,
			End:   bound,
		})
		cursor = bound
	}

	return blocks
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// Timeline partitions schedules over a fixed daily window
type Timeline struct {
	Window       Window
	MaxFreeBlock time.Duration
}

// NewTimeline creates a timeline for the window. A non-positive maxFree uses
// DefaultMaxFreeBlock.
func NewTimeline(window Window, maxFree time.Duration) Timeline {
	if maxFree <= 0 {
		maxFree = DefaultMaxFreeBlock
	}
	return Timeline{Window: window, MaxFreeBlock: maxFree}
}

// Blocks partitions the schedule over the window on ref's day
func (t Timeline) Blocks(schedule []models.Meeting, ref time.Time) []Block {
	start, end := t.Window.Bounds(ref)
	return Partition(schedule, start, end, t.MaxFreeBlock)
}

// NowOffset returns the minutes from the window start to ref, clamped to the window
func (t Timeline) NowOffset(ref time.Time) int {
	offset := MinutesSinceWindowStart(ref, t.Window.StartHour)
	if offset < 0 {
		return 0
	}
	if limit := t.Window.Minutes(); offset > limit {
		return limit
	}
	return offset
}
