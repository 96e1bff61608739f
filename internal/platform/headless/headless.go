// Package headless runs a game on a virtual clock without a terminal.
// It is used by the simulate command and by tests that need whole sessions.
package headless

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hongjigr-sebon/tmposegame/internal/core"
	"github.com/hongjigr-sebon/tmposegame/internal/sim"
)

const (
	DefaultFPS      = 60
	DefaultDuration = 5 * time.Minute
)

// Options configures a headless run.
type Options struct {
	FPS      int           // frames per virtual second
	Duration time.Duration // session is stopped manually after this long
	Labels   []string      // one entry per frame, "" delivers nothing
	Sink     sim.Sink      // receives every feedback event
	Logger   *log.Logger
	OnEnd    func(sim.Summary)
}

// Result describes a finished run.
type Result struct {
	Summary sim.Summary
	Frames  int
	Events  map[core.FeedbackKind]int
}

// epoch anchors the virtual clock so runs are reproducible.
var epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Run plays one full session of v. Countdown ticks fire at the variant's
// period on the same virtual clock as frames. If ctx is cancelled the
// session is stopped and the partial result is returned with ctx's error.
func Run(ctx context.Context, v sim.Variant, opts Options) (Result, error) {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	res := Result{Events: make(map[core.FeedbackKind]int)}
	counter := sim.SinkFunc(func(ev core.Feedback) error {
		res.Events[ev.Kind]++
		return nil
	})
	sink := sim.MultiSink{counter}
	if opts.Sink != nil {
		sink = append(sink, opts.Sink)
	}

	driverOpts := []sim.Option{sim.WithSink(sink), sim.WithLogger(opts.Logger)}
	if opts.OnEnd != nil {
		driverOpts = append(driverOpts, sim.OnEnd(opts.OnEnd))
	}
	d := sim.NewDriver(v, driverOpts...)

	step := time.Second / time.Duration(opts.FPS)
	period := d.CountdownPeriod()
	gen := d.Start(epoch)
	nextCountdown := epoch.Add(period)
	deadline := epoch.Add(opts.Duration)

	opts.Logger.Debug("headless run started", "game", v.ID(), "fps", opts.FPS, "duration", opts.Duration)

	for i := 0; d.Active(); i++ {
		if err := ctx.Err(); err != nil {
			res.Summary, _ = d.Stop()
			return res, err
		}

		now := epoch.Add(time.Duration(i) * step)
		if !now.Before(deadline) {
			res.Summary, _ = d.Stop()
			break
		}

		if period > 0 && !now.Before(nextCountdown) {
			nextCountdown = nextCountdown.Add(period)
			if sum, ended := d.Countdown(gen); ended {
				res.Summary = sum
				break
			}
		}

		if i < len(opts.Labels) && opts.Labels[i] != "" {
			in := core.NewInputFrame()
			in.AddLabel(opts.Labels[i])
			d.Input(in)
		}

		res.Frames++
		if sum, ended := d.Frame(now); ended {
			res.Summary = sum
			break
		}
	}

	opts.Logger.Debug("headless run finished",
		"game", v.ID(), "reason", res.Summary.Reason, "score", res.Summary.Score, "frames", res.Frames)
	return res, nil
}
