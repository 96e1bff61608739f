package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/hongjigr-sebon/tmposegame/internal/core"
	"github.com/hongjigr-sebon/tmposegame/internal/sim"
)

const flashDuration = 600 * time.Millisecond

// Flash is the terminal feedback sink: a short HUD message per event and a
// bell on hits.
type Flash struct {
	bell io.Writer
	now  func() time.Time

	text  string
	color core.Color
	until time.Time
}

var _ sim.Sink = (*Flash)(nil)

// NewFlash creates a flash sink. bell may be nil to stay silent.
func NewFlash(bell io.Writer) *Flash {
	return &Flash{bell: bell, now: time.Now}
}

// Feedback implements sim.Sink.
func (f *Flash) Feedback(ev core.Feedback) error {
	switch ev.Kind {
	case core.FeedbackBonus:
		f.show(fmt.Sprintf("+%d", ev.Value), core.ColorBrightGreen)
	case core.FeedbackObstacleHit:
		f.show("Ouch!", core.ColorBrightRed)
		return f.ring()
	case core.FeedbackHazardHit:
		f.show("Hazard: "+ev.Key, core.ColorBrightRed)
		return f.ring()
	case core.FeedbackSessionEnded:
		f.until = time.Time{}
	}
	return nil
}

func (f *Flash) show(text string, c core.Color) {
	f.text = text
	f.color = c
	f.until = f.now().Add(flashDuration)
}

func (f *Flash) ring() error {
	if f.bell == nil {
		return nil
	}
	_, err := io.WriteString(f.bell, "\a")
	return err
}

// Current returns the message to show at now, if any.
func (f *Flash) Current(now time.Time) (string, core.Color, bool) {
	if f.text == "" || !now.Before(f.until) {
		return "", core.ColorDefault, false
	}
	return f.text, f.color, true
}
