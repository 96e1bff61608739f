package catcher

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/hongjigr-sebon/tmposegame/internal/config"
	"github.com/hongjigr-sebon/tmposegame/internal/core"
	"github.com/hongjigr-sebon/tmposegame/internal/registry"
	"github.com/hongjigr-sebon/tmposegame/internal/sim"
)

type scriptedRNG struct {
	draws []float64
	i     int
}

func (s *scriptedRNG) Float64() float64 {
	if s.i >= len(s.draws) {
		return s.draws[len(s.draws)-1]
	}
	d := s.draws[s.i]
	s.i++
	return d
}

func newTestGame(t *testing.T, cfg config.CatcherConfig, rng sim.RandomSource) *Game {
	t.Helper()
	if rng == nil {
		rng = sim.NewSeededRNG(7)
	}
	g, err := New(cfg, rng)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// itemInBasket returns a motionless item overlapping the basket.
func itemInBasket(g *Game, kind sim.Kind, key string, value int) sim.Object {
	b := g.basket()
	return sim.Object{
		Kind:  kind,
		Key:   key,
		Box:   core.NewBox(b.X+15, b.Y+5, 30, 15),
		Value: value,
	}
}

var t0 = time.Unix(1_700_000_000, 0)

func TestCatcherInitialState(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig(), nil)
	snap := g.Snapshot()

	if snap.Score != 0 || snap.Level != 1 || snap.Remaining != 60 {
		t.Errorf("initial snapshot = %+v", snap)
	}
	if snap.Lane != 1 || snap.Lanes != 3 {
		t.Errorf("lane = %d/%d, want 1/3", snap.Lane, snap.Lanes)
	}
	if snap.MaxWarnings != 0 {
		t.Errorf("end_session policy should not report warnings, got %d", snap.MaxWarnings)
	}
	b := snap.Player
	if math.Abs(b.X-170) > 1e-9 || b.Y != 360 || b.W != 60 || b.H != 30 {
		t.Errorf("basket = %+v", b)
	}
}

func TestCatcherThreePickups(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig(), nil)
	for range 3 {
		g.objects.Add(itemInBasket(g, sim.KindBonus, "1k", 1000))
	}

	f := sim.NewFrame(0.001)
	g.Update(f)

	if g.score != 3000 {
		t.Errorf("score = %d, want 3000", g.score)
	}
	if g.level != 1 {
		t.Errorf("level = %d, want 1", g.level)
	}
	if len(g.objects) != 0 {
		t.Errorf("%d items left, want 0", len(g.objects))
	}
	if n := len(f.Events()); n != 3 {
		t.Errorf("%d events, want 3", n)
	}
	if f.Ended() {
		t.Error("bonus pickups should not end the session")
	}
}

func TestCatcherHazardEndsSession(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig(), nil)
	d := sim.NewDriver(g)
	d.Start(t0)
	d.Frame(t0)

	g.objects.Add(
		itemInBasket(g, sim.KindHazard, "scammer", 0),
		itemInBasket(g, sim.KindBonus, "1k", 1000),
	)
	sum, ended := d.Frame(t0.Add(10 * time.Millisecond))
	if !ended {
		t.Fatal("hazard should end the session")
	}
	if sum.Reason != sim.ReasonHazard {
		t.Errorf("reason = %v, want hazard", sum.Reason)
	}
	if sum.Score != 0 {
		t.Errorf("score = %d, want 0: resolution must stop at the hazard", sum.Score)
	}
	if d.Active() {
		t.Error("driver should be idle")
	}
}

func TestCatcherWarningPolicy(t *testing.T) {
	cfg := config.DefaultCatcherConfig()
	cfg.Rules.HazardPolicy = config.HazardWarning
	cfg.Rules.MaxWarnings = 3
	g := newTestGame(t, cfg, nil)

	for i := 1; i <= 3; i++ {
		g.objects.Add(itemInBasket(g, sim.KindHazard, "scammer", 0))
		f := sim.NewFrame(0.001)
		g.Update(f)

		if g.warnings != i {
			t.Fatalf("warnings = %d, want %d", g.warnings, i)
		}
		if got, want := f.Ended(), i == 3; got != want {
			t.Fatalf("hit %d: ended = %v, want %v", i, got, want)
		}
	}
	if snap := g.Snapshot(); snap.MaxWarnings != 3 {
		t.Errorf("MaxWarnings = %d, want 3", snap.MaxWarnings)
	}
}

func TestCatcherObstacleWithoutCap(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig(), nil)

	for i := 1; i <= 4; i++ {
		g.objects.Add(itemInBasket(g, sim.KindObstacle, "rock", 0))
		f := sim.NewFrame(0.001)
		g.Update(f)

		if f.Ended() {
			t.Fatalf("obstacle %d ended the session without a warning cap", i)
		}
		if g.warnings != i {
			t.Fatalf("warnings = %d, want %d", g.warnings, i)
		}
	}
}

func TestCatcherCountdownExpiry(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig(), nil)
	d := sim.NewDriver(g)
	gen := d.Start(t0)

	if d.CountdownPeriod() != time.Second {
		t.Errorf("period = %v, want 1s", d.CountdownPeriod())
	}
	for i := 1; i < 60; i++ {
		if _, ended := d.Countdown(gen); ended {
			t.Fatalf("ended early after %d ticks", i)
		}
	}
	if got := d.Snapshot().Remaining; got != 1 {
		t.Fatalf("remaining = %d, want 1", got)
	}

	sum, ended := d.Countdown(gen)
	if !ended {
		t.Fatal("countdown should end the session at zero")
	}
	if sum.Reason != sim.ReasonTimeout || sum.Remaining != 0 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestCatcherStaleCountdownDropped(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig(), nil)
	d := sim.NewDriver(g)
	old := d.Start(t0)
	d.Stop()
	d.Start(t0)

	d.Countdown(old)
	if got := d.Snapshot().Remaining; got != 60 {
		t.Errorf("stale tick changed the timer: remaining = %d", got)
	}
}

func TestCatcherLaneInput(t *testing.T) {
	tests := []struct {
		labels []string
		want   int
	}{
		{[]string{"Left"}, 0},
		{[]string{"오른쪽"}, 2},
		{[]string{"  CENTER "}, 1},
		{[]string{"left", "right"}, 2},
		{[]string{"right", "wave"}, 2},
		{[]string{"점프"}, 1},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.labels, ","), func(t *testing.T) {
			g := newTestGame(t, config.DefaultCatcherConfig(), nil)
			in := core.NewInputFrame()
			for _, l := range tt.labels {
				in.AddLabel(l)
			}
			g.Input(in)
			if g.Lane() != tt.want {
				t.Errorf("lane = %d, want %d", g.Lane(), tt.want)
			}
		})
	}
}

func TestCatcherSpawn(t *testing.T) {
	// 0.7 draws the 5k item, 0.9 picks the right lane.
	rng := &scriptedRNG{draws: []float64{0.7, 0.9}}
	g := newTestGame(t, config.DefaultCatcherConfig(), rng)

	o := g.spawn()
	if o.Key != "5k" || o.Kind != sim.KindBonus || o.Value != 5000 {
		t.Fatalf("spawned %+v", o)
	}
	wantX := 400.0/3*2 + 400.0/6 - 15
	if math.Abs(o.Box.X-wantX) > 1e-9 || o.Box.Y != -30 {
		t.Errorf("box = %+v, want x=%v y=-30", o.Box, wantX)
	}
	if math.Abs(o.Speed-165) > 1e-9 {
		t.Errorf("speed = %v, want 165", o.Speed)
	}
}

func TestCatcherSpawnsOverTime(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig(), nil)
	g.lane = 0

	// 1000ms interval fires once accumulated time exceeds it.
	for range 63 {
		g.Update(sim.NewFrame(0.016))
	}
	if len(g.objects) != 1 {
		t.Fatalf("%d items after 1008ms, want 1", len(g.objects))
	}
	if g.sched.IntervalMs() != 950 {
		t.Errorf("next interval = %v, want 950", g.sched.IntervalMs())
	}
}

func TestCatcherCull(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig(), nil)
	g.lane = 2
	g.objects.Add(
		sim.Object{Kind: sim.KindBonus, Key: "1k", Box: core.NewBox(50, 395, 30, 15), Speed: 100},
		sim.Object{Kind: sim.KindBonus, Key: "1k", Box: core.NewBox(50, 100, 30, 15), Speed: 100},
	)

	g.Update(sim.NewFrame(0.1))
	if len(g.objects) != 1 {
		t.Fatalf("%d items left, want 1", len(g.objects))
	}
	if y := g.objects[0].Box.Y; math.Abs(y-110) > 1e-9 {
		t.Errorf("remaining item y = %v, want 110", y)
	}
}

func TestCatcherLevelUp(t *testing.T) {
	tests := []struct {
		name  string
		score int
		value int
		want  int
	}{
		{"below threshold", 0, 50000, 1},
		{"one threshold", 49000, 5000, 2},
		{"several thresholds", 0, 200000, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, config.DefaultCatcherConfig(), nil)
			g.score = tt.score
			g.objects.Add(itemInBasket(g, sim.KindBonus, "big", tt.value))
			g.Update(sim.NewFrame(0.001))
			if g.level != tt.want {
				t.Errorf("level = %d, want %d", g.level, tt.want)
			}
		})
	}
}

func TestCatcherRender(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig(), nil)
	g.objects.Add(sim.Object{Kind: sim.KindBonus, Key: "10k", Box: core.NewBox(50, 100, 30, 15)})
	g.remaining = 9

	scr := core.NewScreen(60, 24)
	g.Render(scr, g.Snapshot())
	out := scr.String()

	for _, want := range []string{"Score: 0", "Level: 1", "Time: 9s", "$", "=", "┊"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Warnings") {
		t.Error("end_session policy should not show warnings")
	}
}

func TestCatcherFactory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	game, err := registry.Create(ID, registry.Options{Difficulty: "hard", Seed: 3})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	snap := game.Snapshot()
	if snap.Remaining != 45 || snap.Level != 3 {
		t.Errorf("hard preset snapshot = %+v", snap)
	}
	if game.Title() != "Item Catcher" {
		t.Errorf("title = %q", game.Title())
	}
}
