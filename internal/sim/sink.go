package sim

import (
	"errors"

	"github.com/hongjigr-sebon/tmposegame/internal/core"
)

// Sink consumes discrete feedback events such as sounds or screen flashes.
// Errors are reported to the driver's logger and otherwise ignored.
type Sink interface {
	Feedback(ev core.Feedback) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ev core.Feedback) error

// Feedback calls f(ev).
func (f SinkFunc) Feedback(ev core.Feedback) error {
	return f(ev)
}

// MultiSink fans an event out to several sinks.
// Every sink is called even if an earlier one fails.
type MultiSink []Sink

// Feedback forwards ev to every sink and joins their errors.
func (m MultiSink) Feedback(ev core.Feedback) error {
	var errs []error
	for _, s := range m {
		if err := s.Feedback(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
