package activity

import (
	"context"
	"sync"
)

// CaptureHook collects events in memory. It backs tests and the built-in
// activity feed.
type CaptureHook struct {
	mu     sync.Mutex
	Events []Event
}

// Notify appends the event.
func (c *CaptureHook) Notify(_ context.Context, event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Events = append(c.Events, event)
	return nil
}

// Recent returns up to limit events, newest first.
func (c *CaptureHook) Recent(limit int) []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	if limit <= 0 || limit > len(c.Events) {
		limit = len(c.Events)
	}
	out := make([]Event, 0, limit)
	for i := len(c.Events) - 1; i >= len(c.Events)-limit; i-- {
		out = append(out, c.Events[i])
	}
	return out
}
