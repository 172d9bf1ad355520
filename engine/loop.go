package engine

import (
	"context"
	"time"
)

// Loop serializes input events and frames on one goroutine
// Event handlers run to completion before the next frame observes their effects
type Loop[E any] struct {
	Queue    *FrameQueue
	Clock    Clock
	Interval time.Duration

	// AfterFrame runs after each flush, typically to present the screen
	AfterFrame func(now time.Time)
}

// Run blocks until ctx is done, events is closed, or handle returns false
func (l *Loop[E]) Run(ctx context.Context, events <-chan E, handle func(E) bool) error {
	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !handle(ev) {
				return nil
			}

		case <-ticker.C:
			now := l.Clock.Now()
			l.Queue.Flush(now)
			if l.AfterFrame != nil {
				l.AfterFrame(now)
			}
		}
	}
}

// FrameInterval converts a refresh rate to a ticker period, defaulting to 60 Hz
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
