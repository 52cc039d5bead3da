package web

import (
	"context"
	"log/slog"
	"time"
)

// Publisher pushes fresh room statuses to connected kiosks
type Publisher interface {
	PublishAll(ctx context.Context) error
}

// Ticker republishes every room on a fixed interval so kiosks roll from one
// meeting to the next without any user action
type Ticker struct {
	interval  time.Duration
	publisher Publisher
	logger    *slog.Logger
}

// NewTicker creates a ticker publishing every interval
func NewTicker(interval time.Duration, publisher Publisher, logger *slog.Logger) *Ticker {
	return &Ticker{
		interval:  interval,
		publisher: publisher,
		logger:    logger,
	}
}

// Run publishes on every tick until ctx is cancelled
func (t *Ticker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := t.publisher.PublishAll(ctx); err != nil && ctx.Err() == nil {
				t.logger.Warn("periodic status publish failed", "error", err)
			}
		}
	}
}
