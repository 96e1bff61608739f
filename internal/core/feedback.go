package core

// FeedbackKind is a discrete trigger point for sound or visual effects.
type FeedbackKind int

const (
	FeedbackBonus FeedbackKind = iota + 1
	FeedbackObstacleHit
	FeedbackHazardHit
	FeedbackSessionEnded
)

// String returns the event name used in logs and traces.
func (k FeedbackKind) String() string {
	switch k {
	case FeedbackBonus:
		return "bonus"
	case FeedbackObstacleHit:
		return "obstacle_hit"
	case FeedbackHazardHit:
		return "hazard_hit"
	case FeedbackSessionEnded:
		return "session_ended"
	default:
		return "unknown"
	}
}

// Feedback is one event emitted by the simulation.
type Feedback struct {
	Kind  FeedbackKind
	Key   string // object key, or end reason for FeedbackSessionEnded
	Value int    // points gained, or final score for FeedbackSessionEnded
}
