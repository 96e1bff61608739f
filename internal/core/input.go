package core

// Action represents a semantic player action, abstracted from physical keys
// and classifier output.
type Action int

const (
	ActionNone    Action = iota
	ActionAscend         // Space, Up - hold to rise (runner)
	ActionConfirm        // Enter - start a session or confirm a menu item
	ActionStop           // S - end the running session
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - start again after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAscend:
		return "Ascend"
	case ActionConfirm:
		return "Confirm"
	case ActionStop:
		return "Stop"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input delivered to a game at one point in time: held
// actions plus any stabilized classifier labels received since the last frame.
type InputFrame struct {
	Actions map[Action]bool
	Labels  []string
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddLabel appends a classifier label.
func (f *InputFrame) AddLabel(label string) {
	f.Labels = append(f.Labels, label)
}

// Empty reports whether the frame carries no actions and no labels.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return len(f.Labels) == 0
}
