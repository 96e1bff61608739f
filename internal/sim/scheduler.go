package sim

import "math"

// Scheduler accumulates frame time and signals when a spawn batch is due.
// The interval is refreshed after every batch and never drops below floor.
type Scheduler struct {
	accumulatedMs float64
	intervalMs    float64
	floorMs       float64
	refresh       func() float64
}

// NewScheduler creates a scheduler with an initial interval and floor.
// refresh is consulted after each batch for the next interval; nil keeps
// the current interval.
func NewScheduler(initialMs, floorMs float64, refresh func() float64) *Scheduler {
	return &Scheduler{
		intervalMs: math.Max(initialMs, floorMs),
		floorMs:    floorMs,
		refresh:    refresh,
	}
}

// Tick adds dt seconds and reports whether a batch should spawn now.
// At most one batch is signalled per call.
func (s *Scheduler) Tick(dt float64) bool {
	if dt <= 0 {
		return false
	}
	s.accumulatedMs += dt * 1000
	if s.accumulatedMs <= s.intervalMs {
		return false
	}

	s.accumulatedMs = 0
	next := s.intervalMs
	if s.refresh != nil {
		next = s.refresh()
	}
	s.intervalMs = math.Max(s.floorMs, next)
	return true
}

// Reset clears the accumulator and restores the initial interval.
func (s *Scheduler) Reset(initialMs float64) {
	s.accumulatedMs = 0
	s.intervalMs = math.Max(initialMs, s.floorMs)
}

// IntervalMs returns the current spawn interval.
func (s *Scheduler) IntervalMs() float64 {
	return s.intervalMs
}

// AccumulatedMs returns time accumulated since the last batch.
func (s *Scheduler) AccumulatedMs() float64 {
	return s.accumulatedMs
}
