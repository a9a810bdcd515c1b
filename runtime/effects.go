package runtime

import (
	"context"
	"time"
)

// PostFunc queues fn to run on the UI goroutine at the start of the next
// Update. It returns false once the application has stopped.
type PostFunc func(fn func()) bool

// Effect runs work in a background goroutine.
// Use the provided context for cancellation and PostFunc to touch widgets.
type Effect struct {
	Run func(ctx context.Context, post PostFunc)
}

// After posts fn after a delay.
func After(delay time.Duration, fn func()) Effect {
	return Effect{
		Run: func(ctx context.Context, post PostFunc) {
			if fn == nil || post == nil {
				return
			}
			if delay <= 0 {
				post(fn)
				return
			}
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
			case <-timer.C:
				post(fn)
			}
		},
	}
}

// Every posts fn on a fixed interval until the context ends.
func Every(interval time.Duration, fn func(time.Time)) Effect {
	return Effect{
		Run: func(ctx context.Context, post PostFunc) {
			if interval <= 0 || fn == nil || post == nil {
				return
			}
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case now := <-ticker.C:
					if !post(func() { fn(now) }) {
						return
					}
				}
			}
		},
	}
}
