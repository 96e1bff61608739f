// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation frame.
type TickMsg time.Time

// CountdownMsg is one countdown period elapsing for session Gen.
type CountdownMsg struct {
	Gen uint64
}

// LabelMsg carries one stabilized classifier label.
type LabelMsg string

// labelsClosedMsg reports that the label feed ended.
type labelsClosedMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// countdownCmd schedules the next countdown tick for session gen.
func countdownCmd(period time.Duration, gen uint64) tea.Cmd {
	if period <= 0 {
		return nil
	}
	return tea.Tick(period, func(time.Time) tea.Msg {
		return CountdownMsg{Gen: gen}
	})
}

// listenLabels waits for the next label from the feed.
func listenLabels(labels <-chan string) tea.Cmd {
	if labels == nil {
		return nil
	}
	return func() tea.Msg {
		label, ok := <-labels
		if !ok {
			return labelsClosedMsg{}
		}
		return LabelMsg(label)
	}
}
