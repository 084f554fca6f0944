// Package testutil provides deterministic test doubles shared across
// packages that record wall-clock timestamps.
package testutil

import (
	"sync"
	"time"
)

// WallClock is a thread-safe fake time source that advances by a fixed
// step on every reading, so recorded timestamps are strictly increasing
// and reproducible across runs.
type WallClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

// NewWallClock creates a clock starting at the given instant. Each call
// to Now advances it by step before returning.
func NewWallClock(start time.Time, step time.Duration) *WallClock {
	return &WallClock{t: start, step: step}
}

// Now advances the clock and returns the new instant.
func (c *WallClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(c.step)
	return c.t
}

// Current returns the last instant handed out without advancing.
func (c *WallClock) Current() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}
