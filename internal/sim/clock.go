// Package sim is the real-time simulation engine shared by every game:
// frame clock, weighted spawn scheduling, object motion and collision
// helpers, and the lifecycle driver that runs a game variant.
package sim

import "time"

// DefaultMaxDelta caps a single frame so a stalled host cannot move
// objects through the player in one step.
const DefaultMaxDelta = 0.25

// Clock turns successive frame timestamps into elapsed seconds.
// The first tick after a reset yields 0, which callers treat as a no-op frame.
type Clock struct {
	last     time.Time
	started  bool
	maxDelta float64
}

// NewClock creates a clock with the given per-frame cap in seconds.
// A non-positive cap disables capping.
func NewClock(maxDelta float64) *Clock {
	return &Clock{maxDelta: maxDelta}
}

// Tick records now and returns seconds elapsed since the previous tick,
// never negative.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// Reset forgets the previous timestamp.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}

// Last returns the most recent timestamp seen, or the zero time.
func (c *Clock) Last() time.Time {
	return c.last
}
