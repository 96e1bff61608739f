package sim

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hongjigr-sebon/tmposegame/internal/core"
)

// Variant is one game's rules, driven frame by frame by a Driver.
// Implementations own their session state; they never schedule anything.
type Variant interface {
	// ID returns the game identifier used for scores and summaries.
	ID() string

	// Reset discards the current session and prepares a fresh one.
	Reset()

	// Update advances the session by f.DT seconds. Terminal conditions are
	// reported with f.End and feedback with f.Emit.
	Update(f *Frame)

	// Input applies classifier labels or key state. Only called while active.
	Input(in core.InputFrame)

	// Snapshot exposes the state a renderer needs.
	Snapshot() Snapshot
}

// Countdown is implemented by variants with an independently clocked timer.
type Countdown interface {
	// CountdownPeriod is how often the host should call Driver.Countdown.
	CountdownPeriod() time.Duration

	// CountdownTick consumes one period of the timer.
	CountdownTick(f *Frame)
}

// State is the lifecycle state of a driver.
type State int

const (
	StateIdle State = iota
	StateActive
)

// String returns "idle" or "active".
func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

// Driver owns one variant and runs its lifecycle: start, per-frame updates,
// countdown ticks, terminal detection and the single stop-then-summarize path.
// A Driver is not safe for concurrent use; hosts call it from one loop.
type Driver struct {
	variant Variant
	clock   *Clock
	sink    Sink
	logger  *log.Logger
	onEnd   []func(Summary)

	state   State
	gen     uint64
	started time.Time
	last    *Summary
}

// Option configures a Driver.
type Option func(*Driver)

// WithSink sets the feedback sink.
func WithSink(s Sink) Option {
	return func(d *Driver) { d.sink = s }
}

// WithLogger sets the logger used for sink failures.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMaxDelta overrides the per-frame cap in seconds.
func WithMaxDelta(sec float64) Option {
	return func(d *Driver) { d.clock = NewClock(sec) }
}

// OnEnd registers a hook called with every summary.
func OnEnd(fn func(Summary)) Option {
	return func(d *Driver) { d.onEnd = append(d.onEnd, fn) }
}

// NewDriver creates an idle driver for v.
func NewDriver(v Variant, opts ...Option) *Driver {
	d := &Driver{
		variant: v,
		clock:   NewClock(DefaultMaxDelta),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Variant returns the driven game.
func (d *Driver) Variant() Variant {
	return d.variant
}

// State returns the lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Active reports whether a session is running.
func (d *Driver) Active() bool {
	return d.state == StateActive
}

// Generation identifies the current session. Timers scheduled for an older
// generation must be ignored.
func (d *Driver) Generation() uint64 {
	return d.gen
}

// Start begins a fresh session and returns its generation.
// Calling Start while active changes nothing.
func (d *Driver) Start(now time.Time) uint64 {
	if d.state == StateActive {
		return d.gen
	}

	d.gen++
	d.variant.Reset()
	d.clock.Reset()
	d.started = now
	d.state = StateActive
	return d.gen
}

// Frame runs one update for the timestamp now. The first frame of a session
// only primes the clock. If the frame ends the session, its summary is returned.
func (d *Driver) Frame(now time.Time) (Summary, bool) {
	if d.state != StateActive {
		return Summary{}, false
	}

	dt := d.clock.Tick(now)
	if dt <= 0 {
		return Summary{}, false
	}

	f := NewFrame(dt)
	d.variant.Update(f)
	return d.settle(f)
}

// Countdown consumes one countdown period for session gen.
// Ticks for stale generations, idle drivers or variants without a timer are dropped.
func (d *Driver) Countdown(gen uint64) (Summary, bool) {
	if d.state != StateActive || gen != d.gen {
		return Summary{}, false
	}
	cd, ok := d.variant.(Countdown)
	if !ok {
		return Summary{}, false
	}

	f := NewFrame(0)
	cd.CountdownTick(f)
	return d.settle(f)
}

// CountdownPeriod returns the variant's timer period, or 0 without a timer.
func (d *Driver) CountdownPeriod() time.Duration {
	if cd, ok := d.variant.(Countdown); ok {
		return cd.CountdownPeriod()
	}
	return 0
}

// Input forwards player input while active; idle input is dropped.
func (d *Driver) Input(in core.InputFrame) {
	if d.state != StateActive {
		return
	}
	d.variant.Input(in)
}

// Stop ends the session manually. Stopping an idle driver is a no-op and
// returns false.
func (d *Driver) Stop() (Summary, bool) {
	if d.state != StateActive {
		return Summary{}, false
	}
	return d.end(ReasonManual), true
}

// Snapshot returns the variant's view with the lifecycle flag filled in.
func (d *Driver) Snapshot() Snapshot {
	snap := d.variant.Snapshot()
	snap.Active = d.state == StateActive
	return snap
}

// LastSummary returns the summary of the most recent session, if any.
func (d *Driver) LastSummary() (Summary, bool) {
	if d.last == nil {
		return Summary{}, false
	}
	return *d.last, true
}

func (d *Driver) settle(f *Frame) (Summary, bool) {
	d.dispatch(f.Events())
	if !f.Ended() {
		return Summary{}, false
	}
	return d.end(f.Reason()), true
}

func (d *Driver) end(reason EndReason) Summary {
	d.state = StateIdle

	var dur time.Duration
	if last := d.clock.Last(); last.After(d.started) {
		dur = last.Sub(d.started)
	}
	s := summarize(d.variant.Snapshot(), d.gen, reason, dur)
	d.last = &s

	d.dispatch([]core.Feedback{{Kind: core.FeedbackSessionEnded, Key: reason.String(), Value: s.Score}})
	for _, fn := range d.onEnd {
		fn(s)
	}
	return s
}

func (d *Driver) dispatch(events []core.Feedback) {
	if d.sink == nil {
		return
	}
	for _, ev := range events {
		d.deliver(ev)
	}
}

// deliver hands one event to the sink. Sink failures never reach the loop.
func (d *Driver) deliver(ev core.Feedback) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Debug("feedback sink panicked", "event", ev.Kind, "panic", r)
		}
	}()
	if err := d.sink.Feedback(ev); err != nil {
		d.logger.Debug("feedback sink failed", "event", ev.Kind, "err", err)
	}
}
