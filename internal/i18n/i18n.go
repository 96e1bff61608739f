// Package i18n holds the user-facing message catalog and locale selection.
package i18n

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hongjigr-sebon/tmposegame/internal/sim"
)

// Message keys. Keys double as the English format strings.
const (
	ScoreKey     = "Score: %d"
	LevelKey     = "Level: %d"
	DistanceKey  = "Distance: %dm"
	WarningsKey  = "Warnings: %d/%d"
	TimeLeftKey  = "Time left: %ds"
	PlayedForKey = "Played for %s"
	StartKey     = "Press Enter to start"
	AgainKey     = "Press Enter to play again, B for menu"

	ReasonManualKey   = "Session stopped"
	ReasonHazardKey   = "Game over: caught a hazard"
	ReasonWarningsKey = "Game over: too many warnings"
	ReasonTimeoutKey  = "Time's up!"
)

// Supported lists the locales with a catalog, default first.
var Supported = []language.Tag{language.English, language.Korean}

var matcher = language.NewMatcher(Supported)

// ParseTag picks the best supported locale for a BCP 47 string.
// Empty or unparsable input selects English.
func ParseTag(s string) language.Tag {
	if s == "" {
		return Supported[0]
	}
	t, err := language.Parse(s)
	if err != nil {
		return Supported[0]
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// Printer returns a message printer for the locale named by s.
func Printer(s string) *message.Printer {
	return message.NewPrinter(ParseTag(s))
}

// ReasonKey returns the headline key for an end reason.
func ReasonKey(r sim.EndReason) string {
	switch r {
	case sim.ReasonHazard:
		return ReasonHazardKey
	case sim.ReasonWarnings:
		return ReasonWarningsKey
	case sim.ReasonTimeout:
		return ReasonTimeoutKey
	default:
		return ReasonManualKey
	}
}

// FormatSummary renders a session summary as display lines.
// Numbers use the printer's locale grouping.
func FormatSummary(p *message.Printer, s sim.Summary) []string {
	lines := []string{
		p.Sprintf(ReasonKey(s.Reason)),
		p.Sprintf(ScoreKey, s.Score),
	}

	if s.Remaining >= 0 {
		lines = append(lines, p.Sprintf(LevelKey, s.Level))
		lines = append(lines, p.Sprintf(TimeLeftKey, s.Remaining))
	} else {
		lines = append(lines, p.Sprintf(DistanceKey, int(s.Progress)))
	}
	if s.MaxWarnings > 0 {
		lines = append(lines, p.Sprintf(WarningsKey, s.Warnings, s.MaxWarnings))
	}
	lines = append(lines, p.Sprintf(PlayedForKey, s.Duration.Round(time.Second).String()))
	return lines
}
