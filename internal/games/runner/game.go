// Package runner implements Cactus Runner, a side-scrolling runner where the
// player holds a jump pose (or Space) to rise over cacti and collect coins.
package runner

import (
	"fmt"

	"github.com/hongjigr-sebon/tmposegame/internal/config"
	"github.com/hongjigr-sebon/tmposegame/internal/core"
	"github.com/hongjigr-sebon/tmposegame/internal/gesture"
	"github.com/hongjigr-sebon/tmposegame/internal/registry"
	"github.com/hongjigr-sebon/tmposegame/internal/sim"
)

// ID is the registry identifier of this game.
const ID = "runner"

// PoseHold is how many seconds of game time one jump label keeps the player
// rising. A stable pose is re-reported every classifier frame, so the hold
// lapses shortly after the classifier stops seeing a jump.
const PoseHold = 0.5

// Game implements the runner session. One value owns exactly one session.
type Game struct {
	cfg     config.RunnerConfig
	spawner *spawner
	sched   *sim.Scheduler
	objects sim.Objects

	score    int
	warnings int
	distance float64 // progress; drives speed and spawn density
	speed    float64 // current scroll speed
	lift     float64 // height above the ground

	keyHeld  bool    // ascend held on the keyboard
	poseLeft float64 // seconds of pose-driven ascend remaining

	glyphs      map[string]glyph
	playerGlyph rune
}

// New creates a runner with the given configuration.
func New(cfg config.RunnerConfig, rng sim.RandomSource) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = sim.DefaultRNG()
	}
	sp, err := newSpawner(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	g := &Game{cfg: cfg, spawner: sp}
	g.loadGlyphs()
	g.sched = sim.NewScheduler(cfg.Curve.BaseIntervalMs, cfg.Curve.FloorMs, func() float64 {
		return g.cfg.Curve.SpawnInterval(g.distance)
	})
	g.Reset()
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cactus Runner"
}

// Reset starts a fresh session.
func (g *Game) Reset() {
	g.score = 0
	g.warnings = 0
	g.distance = 0
	g.speed = g.cfg.Curve.Speed(0)
	g.lift = 0
	g.keyHeld = false
	g.poseLeft = 0
	g.objects.Reset()
	g.sched.Reset(g.cfg.Curve.BaseIntervalMs)
}

// Input updates the ascend signal. Key state is replaced every call. A jump
// label refreshes the pose hold; any other label releases it at once.
func (g *Game) Input(in core.InputFrame) {
	g.keyHeld = in.Has(core.ActionAscend)
	for _, label := range in.Labels {
		if gesture.Canonicalize(label) == gesture.PoseJump {
			g.poseLeft = PoseHold
		} else {
			g.poseLeft = 0
		}
	}
}

// Ascending reports whether the player is currently rising.
func (g *Game) Ascending() bool {
	return g.keyHeld || g.poseLeft > 0
}

// Update advances the session by f.DT seconds.
func (g *Game) Update(f *sim.Frame) {
	dt := f.DT

	g.distance = g.cfg.Curve.Advance(g.distance, g.speed, dt)
	g.speed = g.cfg.Curve.Speed(g.distance)
	g.updateLift(dt)
	g.poseLeft = max(g.poseLeft-dt, 0)

	if g.sched.Tick(dt) {
		g.objects.Add(g.spawner.batch(g.speed)...)
	}

	g.objects.Translate(-g.speed*dt, 0)
	g.objects.Cull(func(o sim.Object) bool { return o.Box.Right() < 0 })

	g.objects.Resolve(g.hitbox(), func(o sim.Object) sim.Resolution {
		return g.resolve(o, f)
	})
}

// updateLift moves the player linearly toward maxLift while ascending and
// back to the ground otherwise.
func (g *Game) updateLift(dt float64) {
	step := g.cfg.Lift.Rate * dt
	if g.Ascending() {
		g.lift = min(g.lift+step, g.cfg.Lift.Max)
	} else {
		g.lift = max(g.lift-step, 0)
	}
}

func (g *Game) resolve(o sim.Object, f *sim.Frame) sim.Resolution {
	switch o.Kind {
	case sim.KindObstacle:
		if g.lift >= g.cfg.Lift.Clearance {
			return sim.Keep
		}
		g.warnings++
		f.Emit(core.FeedbackObstacleHit, o.Key, g.warnings)
		if g.warnings >= g.cfg.Rules.MaxWarnings {
			f.End(sim.ReasonWarnings)
			return sim.Halt
		}
		return sim.Consume

	case sim.KindBonus:
		g.score += o.Value
		f.Emit(core.FeedbackBonus, o.Key, o.Value)
		return sim.Consume

	case sim.KindHazard:
		f.Emit(core.FeedbackHazardHit, o.Key, 0)
		f.End(sim.ReasonHazard)
		return sim.Halt
	}
	return sim.Keep
}

// hitbox is the player's ground footprint. Lift is checked separately so
// coins are collected at any height.
func (g *Game) hitbox() core.Box {
	p := g.cfg.Player
	return core.NewBox(p.X, g.cfg.Playfield.GroundY()-p.Height, p.Width, p.Height)
}

// Snapshot exposes the session for rendering.
func (g *Game) Snapshot() sim.Snapshot {
	return sim.Snapshot{
		GameID:      ID,
		Width:       g.cfg.Playfield.Width,
		Height:      g.cfg.Playfield.Height,
		Player:      g.hitbox(),
		Lift:        g.lift,
		MaxLift:     g.cfg.Lift.Max,
		Lane:        sim.NoLane,
		Objects:     g.objects.Clone(),
		Score:       g.score,
		Level:       1,
		Progress:    g.distance,
		Warnings:    g.warnings,
		MaxWarnings: g.cfg.Rules.MaxWarnings,
		Remaining:   -1,
	}
}

// Factory builds a runner from registry options.
func Factory(opts registry.Options) (registry.Game, error) {
	cfg, err := config.LoadRunner(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyRunnerPreset(&cfg, preset)

	var rng sim.RandomSource
	if opts.Seed != 0 {
		rng = sim.NewSeededRNG(opts.Seed)
	}
	return New(cfg, rng)
}

func init() {
	registry.Register(ID, "Cactus Runner", Factory)
}
