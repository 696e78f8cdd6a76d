// Package engine schedules the page's frames: a ticker-driven loop that also runs posted
// input handlers on its goroutine, and the clocks that timestamp each frame.
package engine

import (
	"sync"
	"time"
)

// Clock timestamps frames and pointer events
// The rotation physics measures every dt from these readings, so one page uses one Clock
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock; readings carry the monotonic component
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to, for deterministic frame timing in tests
type ManualClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewManualClock starts at start with no auto-step
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current reading, then moves it forward by the step
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

// Set jumps to t
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the reading forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// SetStep makes every Now advance the clock by d, like a steady frame rate
func (c *ManualClock) SetStep(d time.Duration) {
	c.mu.Lock()
	c.step = d
	c.mu.Unlock()
}
