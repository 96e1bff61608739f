package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hongjigr-sebon/tmposegame/internal/core"
	"github.com/hongjigr-sebon/tmposegame/internal/gesture"
)

// DefaultHoldWindow is how long an ascend key press counts as held.
// Terminals report presses and auto-repeat but never releases. The window
// must outlast the usual 300-500ms delay before auto-repeat starts.
const DefaultHoldWindow = 500 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "up", "w":
		return core.ActionAscend, false
	case "enter":
		return core.ActionConfirm, false
	case "s":
		return core.ActionStop, false
	case "b", "esc":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapLabel synthesizes a classifier label from a lane key, so the keyboard
// drives the catcher through the same canonicalizer as the camera.
func (km *KeyMapper) MapLabel(msg tea.KeyMsg) (string, bool) {
	switch msg.String() {
	case "1", "left", "a":
		return gesture.LaneLabel(0), true
	case "2", "down":
		return gesture.LaneLabel(1), true
	case "3", "right", "d":
		return gesture.LaneLabel(2), true
	}
	return "", false
}

// HoldState approximates a held key from repeated presses.
type HoldState struct {
	window time.Duration
	until  time.Time
}

// NewHoldState creates a hold tracker with the given window.
func NewHoldState(window time.Duration) HoldState {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return HoldState{window: window}
}

// Press records a key press at now.
func (h *HoldState) Press(now time.Time) {
	h.until = now.Add(h.window)
}

// Held reports whether the key still counts as held at now.
func (h HoldState) Held(now time.Time) bool {
	return now.Before(h.until)
}

// Release forgets any press.
func (h *HoldState) Release() {
	h.until = time.Time{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
