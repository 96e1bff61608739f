package sim

import (
	"time"

	"github.com/hongjigr-sebon/tmposegame/internal/core"
)

// NoLane marks a snapshot without lane positioning.
const NoLane = -1

// Snapshot is the read-only view handed to render sinks once per frame.
type Snapshot struct {
	GameID string
	Width  float64 // playfield size in world units
	Height float64

	Player  core.Box
	Lift    float64 // runner lift height above the ground
	MaxLift float64
	Lane    int // catcher lane index, or NoLane
	Lanes   int

	Objects []Object

	Score       int
	Level       int
	Progress    float64
	Warnings    int
	MaxWarnings int
	Remaining   int // countdown seconds left, or -1 without a countdown
	Active      bool
}

// Summary is produced exactly once for every active-to-idle transition.
type Summary struct {
	GameID      string
	Generation  uint64
	Reason      EndReason
	Score       int
	Level       int
	Progress    float64
	Warnings    int
	MaxWarnings int
	Remaining   int
	Duration    time.Duration
}

// Won reports whether the session ended without a loss condition.
func (s Summary) Won() bool {
	return s.Reason == ReasonTimeout || s.Reason == ReasonManual
}

func summarize(snap Snapshot, gen uint64, reason EndReason, d time.Duration) Summary {
	return Summary{
		GameID:      snap.GameID,
		Generation:  gen,
		Reason:      reason,
		Score:       snap.Score,
		Level:       snap.Level,
		Progress:    snap.Progress,
		Warnings:    snap.Warnings,
		MaxWarnings: snap.MaxWarnings,
		Remaining:   snap.Remaining,
		Duration:    d,
	}
}
