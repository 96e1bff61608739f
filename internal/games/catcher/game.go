// Package catcher implements Item Catcher: items fall down three lanes and the
// player moves a basket between lanes with left/center/right poses before the
// countdown runs out.
package catcher

import (
	"fmt"
	"time"

	"github.com/hongjigr-sebon/tmposegame/internal/config"
	"github.com/hongjigr-sebon/tmposegame/internal/core"
	"github.com/hongjigr-sebon/tmposegame/internal/gesture"
	"github.com/hongjigr-sebon/tmposegame/internal/registry"
	"github.com/hongjigr-sebon/tmposegame/internal/sim"
)

// ID is the registry identifier of this game.
const ID = "catcher"

// Lanes is the fixed number of lanes.
const Lanes = 3

// Game implements the catcher session. One value owns exactly one session.
type Game struct {
	cfg     config.CatcherConfig
	rng     sim.RandomSource
	table   *sim.WeightedTable[spawnType]
	sched   *sim.Scheduler
	objects sim.Objects

	score     int
	level     int
	warnings  int
	remaining int // countdown seconds
	lane      int

	glyphs      map[string]glyph
	playerGlyph rune
}

// New creates a catcher with the given configuration.
func New(cfg config.CatcherConfig, rng sim.RandomSource) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = sim.DefaultRNG()
	}
	table, err := buildTable(cfg.Spawn.Table)
	if err != nil {
		return nil, fmt.Errorf("catcher: %w", err)
	}

	g := &Game{cfg: cfg, rng: rng, table: table}
	g.sched = sim.NewScheduler(cfg.Curve.BaseIntervalMs, cfg.Curve.FloorMs, func() float64 {
		return g.cfg.Curve.SpawnInterval(g.level)
	})
	g.loadGlyphs()
	g.Reset()
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Item Catcher"
}

// Reset starts a fresh session with the basket in the start lane.
func (g *Game) Reset() {
	g.score = 0
	g.level = g.cfg.Rules.StartLevel
	g.warnings = 0
	g.remaining = g.cfg.Rules.TimeLimit
	g.lane = g.cfg.Player.StartLane
	g.objects.Reset()
	g.sched.Reset(g.cfg.Curve.BaseIntervalMs)
}

// Input snaps the basket to the lane named by the most recent recognized label.
func (g *Game) Input(in core.InputFrame) {
	for _, label := range in.Labels {
		if lane, ok := gesture.Canonicalize(label).Lane(); ok {
			g.lane = lane
		}
	}
}

// Lane returns the basket's lane index.
func (g *Game) Lane() int {
	return g.lane
}

// Update spawns, moves, culls and resolves items for f.DT seconds.
func (g *Game) Update(f *sim.Frame) {
	dt := f.DT

	if g.sched.Tick(dt) {
		g.objects.Add(g.spawn())
	}

	g.objects.Advance(dt, 0, 1)
	h := g.cfg.Playfield.Height
	g.objects.Cull(func(o sim.Object) bool { return o.Box.Y > h })

	g.objects.Resolve(g.basket(), func(o sim.Object) sim.Resolution {
		return g.resolve(o, f)
	})
}

func (g *Game) resolve(o sim.Object, f *sim.Frame) sim.Resolution {
	switch o.Kind {
	case sim.KindBonus:
		g.score += o.Value
		g.level = g.cfg.Curve.LevelFor(g.score, g.level)
		f.Emit(core.FeedbackBonus, o.Key, o.Value)
		return sim.Consume

	case sim.KindHazard:
		if g.cfg.Rules.HazardPolicy == config.HazardWarning {
			return g.warn(o, f, core.FeedbackHazardHit)
		}
		f.Emit(core.FeedbackHazardHit, o.Key, 0)
		f.End(sim.ReasonHazard)
		return sim.Halt

	case sim.KindObstacle:
		return g.warn(o, f, core.FeedbackObstacleHit)
	}
	return sim.Keep
}

// warn counts a non-fatal hit and ends the session at the cap.
func (g *Game) warn(o sim.Object, f *sim.Frame, kind core.FeedbackKind) sim.Resolution {
	g.warnings++
	f.Emit(kind, o.Key, g.warnings)
	if limit := g.maxWarnings(); limit > 0 && g.warnings >= limit {
		f.End(sim.ReasonWarnings)
		return sim.Halt
	}
	return sim.Consume
}

func (g *Game) maxWarnings() int {
	if g.cfg.Rules.HazardPolicy == config.HazardWarning {
		return g.cfg.Rules.MaxWarnings
	}
	return 0
}

// CountdownPeriod implements sim.Countdown.
func (g *Game) CountdownPeriod() time.Duration {
	return time.Second
}

// CountdownTick removes one second and ends the session at zero.
func (g *Game) CountdownTick(f *sim.Frame) {
	if g.remaining > 0 {
		g.remaining--
	}
	if g.remaining <= 0 {
		f.End(sim.ReasonTimeout)
	}
}

// laneWidth returns the width of one lane.
func (g *Game) laneWidth() float64 {
	return g.cfg.Playfield.Width / Lanes
}

// laneCenter returns the x-coordinate of the middle of lane i.
func (g *Game) laneCenter(i int) float64 {
	return g.laneWidth()*float64(i) + g.laneWidth()/2
}

// basket is the player's hitbox, centered in its lane.
func (g *Game) basket() core.Box {
	p := g.cfg.Player
	x := g.laneWidth()*float64(g.lane) + (g.laneWidth()-p.Width)/2
	return core.NewBox(x, g.cfg.Playfield.Height-p.BottomOffset, p.Width, p.Height)
}

// Snapshot exposes the session for rendering.
func (g *Game) Snapshot() sim.Snapshot {
	return sim.Snapshot{
		GameID:      ID,
		Width:       g.cfg.Playfield.Width,
		Height:      g.cfg.Playfield.Height,
		Player:      g.basket(),
		Lane:        g.lane,
		Lanes:       Lanes,
		Objects:     g.objects.Clone(),
		Score:       g.score,
		Level:       g.level,
		Progress:    float64(g.level),
		Warnings:    g.warnings,
		MaxWarnings: g.maxWarnings(),
		Remaining:   g.remaining,
	}
}

// Factory builds a catcher from registry options.
func Factory(opts registry.Options) (registry.Game, error) {
	cfg, err := config.LoadCatcher(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyCatcherPreset(&cfg, preset)

	var rng sim.RandomSource
	if opts.Seed != 0 {
		rng = sim.NewSeededRNG(opts.Seed)
	}
	return New(cfg, rng)
}

func init() {
	registry.Register(ID, "Item Catcher", Factory)
}
