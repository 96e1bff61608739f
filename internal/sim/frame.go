package sim

import "github.com/hongjigr-sebon/tmposegame/internal/core"

// EndReason records why a session left the active state.
type EndReason int

const (
	ReasonNone     EndReason = iota
	ReasonManual             // stop requested by the player or host
	ReasonHazard             // hazard collision
	ReasonWarnings           // warning cap reached
	ReasonTimeout            // countdown expired
)

// String returns the reason name stored with session summaries.
func (r EndReason) String() string {
	switch r {
	case ReasonManual:
		return "manual"
	case ReasonHazard:
		return "hazard"
	case ReasonWarnings:
		return "warnings"
	case ReasonTimeout:
		return "timeout"
	default:
		return "none"
	}
}

// Frame carries one update's elapsed time and collects what happened during it.
type Frame struct {
	DT     float64
	events []core.Feedback
	reason EndReason
}

// NewFrame creates a frame advancing dt seconds.
func NewFrame(dt float64) *Frame {
	return &Frame{DT: dt}
}

// Emit queues a feedback event for the sinks.
func (f *Frame) Emit(kind core.FeedbackKind, key string, value int) {
	f.events = append(f.events, core.Feedback{Kind: kind, Key: key, Value: value})
}

// End marks the session as finished. The first reason wins.
func (f *Frame) End(reason EndReason) {
	if f.reason == ReasonNone {
		f.reason = reason
	}
}

// Ended reports whether a terminal condition was hit during this frame.
func (f *Frame) Ended() bool {
	return f.reason != ReasonNone
}

// Reason returns the terminal reason, or ReasonNone.
func (f *Frame) Reason() EndReason {
	return f.reason
}

// Events returns the feedback emitted so far.
func (f *Frame) Events() []core.Feedback {
	return f.events
}
