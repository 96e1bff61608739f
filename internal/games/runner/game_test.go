package runner

import (
	"strings"
	"testing"
	"time"

	"github.com/hongjigr-sebon/tmposegame/internal/config"
	"github.com/hongjigr-sebon/tmposegame/internal/core"
	"github.com/hongjigr-sebon/tmposegame/internal/registry"
	"github.com/hongjigr-sebon/tmposegame/internal/sim"
)

// scriptedRNG replays draws in order and then repeats the last one.
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

func newTestGame(t *testing.T, rng sim.RandomSource) *Game {
	t.Helper()
	if rng == nil {
		rng = sim.NewSeededRNG(1)
	}
	g, err := New(config.DefaultRunnerConfig(), rng)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// obstacleAtPlayer places a cactus overlapping the player's footprint.
func obstacleAtPlayer(g *Game) sim.Object {
	hb := g.hitbox()
	return sim.Object{Kind: sim.KindObstacle, Key: "cactus", Box: core.NewBox(hb.X, hb.Y, 40, 40)}
}

func coinAtPlayer(g *Game) sim.Object {
	hb := g.hitbox()
	return sim.Object{Kind: sim.KindBonus, Key: "coin", Box: core.NewBox(hb.X, hb.Y, 40, 40), Value: 1000}
}

var start = time.Unix(1_700_000_000, 0)

func frameAt(i int) time.Time { return start.Add(time.Duration(i) * time.Millisecond) }

func TestRunnerInitialState(t *testing.T) {
	g := newTestGame(t, nil)
	snap := g.Snapshot()

	if snap.Score != 0 || snap.Warnings != 0 || snap.Progress != 0 || snap.Lift != 0 {
		t.Errorf("initial snapshot = %+v", snap)
	}
	if snap.MaxWarnings != 5 {
		t.Errorf("MaxWarnings = %d, want 5", snap.MaxWarnings)
	}
	if g.speed != 200 {
		t.Errorf("speed = %v, want 200", g.speed)
	}
	if !snap.Player.Within(snap.Width, snap.Height) {
		t.Errorf("player %+v outside playfield", snap.Player)
	}
}

func TestRunnerLiftTriangle(t *testing.T) {
	g := newTestGame(t, nil)

	in := core.NewInputFrame()
	in.Set(core.ActionAscend)
	g.Input(in)

	g.Update(sim.NewFrame(0.1))
	if g.lift != 60 {
		t.Errorf("lift after 0.1s = %v, want 60", g.lift)
	}
	g.Update(sim.NewFrame(0.1))
	g.Update(sim.NewFrame(0.1))
	if g.lift != 120 {
		t.Errorf("lift should cap at 120, got %v", g.lift)
	}

	g.Input(core.NewInputFrame())
	g.Update(sim.NewFrame(0.15))
	if g.lift != 30 {
		t.Errorf("lift after falling 0.15s = %v, want 30", g.lift)
	}
	g.Update(sim.NewFrame(0.15))
	if g.lift != 0 {
		t.Errorf("lift should floor at 0, got %v", g.lift)
	}
}

func TestRunnerPoseInput(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   bool
	}{
		{"jump", []string{"점프"}, true},
		{"jump then empty frame", []string{"jump", ""}, true},
		{"jump then unknown", []string{"jump", "wave"}, false},
		{"jump then lane", []string{"jump", "Left"}, false},
		{"lane then jump", []string{"Left", "JUMP"}, true},
		{"unknown only", []string{"Stand"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, nil)
			for _, l := range tt.labels {
				in := core.NewInputFrame()
				if l != "" {
					in.AddLabel(l)
				}
				g.Input(in)
			}
			if got := g.Ascending(); got != tt.want {
				t.Errorf("Ascending() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunnerPoseHoldLapses(t *testing.T) {
	tests := []struct {
		name  string
		after string // label following the jump, "" for none
	}{
		{"classifier goes quiet", ""},
		{"neutral class", "Stand"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, nil)
			jump := core.NewInputFrame()
			jump.AddLabel("jump")
			g.Input(jump)
			if tt.after != "" {
				next := core.NewInputFrame()
				next.AddLabel(tt.after)
				g.Input(next)
			}

			for i := 0; i < 600; i++ {
				g.Input(core.NewInputFrame())
				g.Update(sim.NewFrame(1.0 / 60))
			}
			if g.Ascending() || g.lift != 0 {
				t.Fatalf("ascending=%v lift=%v, want grounded", g.Ascending(), g.lift)
			}

			// Drop whatever spawned meanwhile and check a fresh hit.
			g.objects.Reset()
			g.warnings = 0
			g.objects.Add(obstacleAtPlayer(g))
			f := sim.NewFrame(0.001)
			g.Update(f)
			if g.warnings != 1 {
				t.Errorf("warnings = %d, want 1 once the hold lapsed", g.warnings)
			}
		})
	}
}

func TestRunnerPoseHoldRefreshed(t *testing.T) {
	g := newTestGame(t, nil)

	// A jump re-reported every frame keeps the player at the top.
	for i := 0; i < 120; i++ {
		in := core.NewInputFrame()
		in.AddLabel("jump")
		g.Input(in)
		g.Update(sim.NewFrame(1.0 / 60))
	}
	if !g.Ascending() || g.lift != g.cfg.Lift.Max {
		t.Errorf("ascending=%v lift=%v, want held at max", g.Ascending(), g.lift)
	}
}

func TestRunnerClearanceBoundary(t *testing.T) {
	tests := []struct {
		name     string
		lift     float64
		wantHit  bool
		wantLeft int
	}{
		{"at clearance is avoided", 20, false, 1},
		{"one unit below is a hit", 19, true, 0},
		{"above clearance is avoided", 80, false, 1},
		{"on the ground is a hit", 0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, nil)
			g.objects.Add(obstacleAtPlayer(g))
			g.lift = tt.lift

			f := sim.NewFrame(0) // no motion, resolution only
			g.objects.Resolve(g.hitbox(), func(o sim.Object) sim.Resolution { return g.resolve(o, f) })

			if hit := g.warnings == 1; hit != tt.wantHit {
				t.Errorf("warnings = %d, hit = %v, want %v", g.warnings, hit, tt.wantHit)
			}
			if len(g.objects) != tt.wantLeft {
				t.Errorf("objects left = %d, want %d", len(g.objects), tt.wantLeft)
			}
		})
	}
}

func TestRunnerWarningCapScenario(t *testing.T) {
	g := newTestGame(t, nil)
	var summaries []sim.Summary
	d := sim.NewDriver(g, sim.OnEnd(func(s sim.Summary) { summaries = append(summaries, s) }))
	d.Start(frameAt(0))
	d.Frame(frameAt(0))

	for i := 1; i <= 5; i++ {
		g.objects.Add(obstacleAtPlayer(g))
		sum, ended := d.Frame(frameAt(i))

		if i < 5 {
			if ended {
				t.Fatalf("session ended early on hit %d", i)
			}
			if g.warnings != i {
				t.Fatalf("warnings after hit %d = %d", i, g.warnings)
			}
			continue
		}
		if !ended {
			t.Fatal("fifth hit should end the session")
		}
		if sum.Warnings != 5 || sum.Reason != sim.ReasonWarnings {
			t.Errorf("summary = %+v", sum)
		}
	}

	if d.Active() || len(summaries) != 1 {
		t.Errorf("active=%v summaries=%d", d.Active(), len(summaries))
	}
}

func TestRunnerCoinsAtAnyHeight(t *testing.T) {
	g := newTestGame(t, nil)
	g.lift = 120
	g.objects.Add(coinAtPlayer(g), coinAtPlayer(g))

	f := sim.NewFrame(0.001)
	g.Update(f)

	if g.score != 2000 {
		t.Errorf("score = %d, want 2000", g.score)
	}
	if len(g.objects) != 0 {
		t.Errorf("coins should be consumed, %d left", len(g.objects))
	}
	events := f.Events()
	if len(events) != 2 || events[0].Kind != core.FeedbackBonus || events[0].Value != 1000 {
		t.Errorf("events = %+v", events)
	}
}

func TestRunnerHaltStopsResolution(t *testing.T) {
	g := newTestGame(t, nil)
	g.warnings = 4
	g.objects.Add(obstacleAtPlayer(g), coinAtPlayer(g))

	f := sim.NewFrame(0.001)
	g.Update(f)

	if !f.Ended() || f.Reason() != sim.ReasonWarnings {
		t.Fatalf("frame should end with warnings, got %v", f.Reason())
	}
	if g.score != 0 {
		t.Error("objects after the terminal hit must not be resolved")
	}
}

func TestRunnerDistanceAndSpeed(t *testing.T) {
	g := newTestGame(t, nil)
	g.Update(sim.NewFrame(0.5))

	if g.distance != 1 {
		t.Errorf("distance = %v, want 1", g.distance)
	}
	if g.speed != 201.5 {
		t.Errorf("speed = %v, want 201.5", g.speed)
	}
}

func TestRunnerCullOnlyOffscreen(t *testing.T) {
	g := newTestGame(t, nil)
	g.objects.Add(
		sim.Object{Kind: sim.KindObstacle, Key: "far", Box: core.NewBox(300, 310, 40, 40)},
		sim.Object{Kind: sim.KindObstacle, Key: "leaving", Box: core.NewBox(-39, 310, 40, 40)},
	)
	g.Update(sim.NewFrame(0.01)) // moves 2 units left

	if len(g.objects) != 1 || g.objects[0].Key != "far" {
		t.Errorf("objects = %+v", g.objects)
	}
	if g.warnings != 0 || g.score != 0 {
		t.Error("non-overlapping objects must not be resolved")
	}
}

func TestRunnerSpawnCluster(t *testing.T) {
	// Draws: type 0.5 -> cactus, cluster 0.1 < 0.3, size 0.9 -> 3.
	rng := &scriptedRNG{draws: []float64{0.5, 0.1, 0.9}}
	g := newTestGame(t, rng)

	objs := g.spawner.batch(200)
	if len(objs) != 3 {
		t.Fatalf("cluster size = %d, want 3", len(objs))
	}
	for i, o := range objs {
		wantX := 400 + float64(i)*30
		if o.Kind != sim.KindObstacle || o.Box.X != wantX || o.Box.Y != 310 {
			t.Errorf("object %d = %+v", i, o)
		}
	}
}

func TestRunnerSpawnSingle(t *testing.T) {
	tests := []struct {
		name  string
		draws []float64
		kind  sim.Kind
		count int
	}{
		{"lone cactus", []float64{0.5, 0.5}, sim.KindObstacle, 1},
		{"coin never clusters", []float64{0.75, 0.0}, sim.KindBonus, 1},
		{"small cluster", []float64{0.1, 0.2, 0.4}, sim.KindObstacle, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, &scriptedRNG{draws: tt.draws})
			objs := g.spawner.batch(200)
			if len(objs) != tt.count || objs[0].Kind != tt.kind {
				t.Errorf("batch = %+v", objs)
			}
		})
	}
}

func TestRunnerSpawnsOverTime(t *testing.T) {
	g := newTestGame(t, nil)
	for i := 0; i < 100; i++ {
		g.Update(sim.NewFrame(0.016))
	}
	if len(g.objects) == 0 && g.warnings == 0 && g.score == 0 {
		t.Error("1.6s of play should spawn at least one batch")
	}
	if g.sched.IntervalMs() > 1500 || g.sched.IntervalMs() < 600 {
		t.Errorf("interval = %v", g.sched.IntervalMs())
	}
}

func TestRunnerRestartResets(t *testing.T) {
	g := newTestGame(t, nil)
	d := sim.NewDriver(g)
	d.Start(frameAt(0))
	d.Frame(frameAt(0))
	g.objects.Add(coinAtPlayer(g))
	d.Frame(frameAt(100))
	d.Stop()

	d.Start(frameAt(1000))
	snap := g.Snapshot()
	if snap.Score != 0 || snap.Progress != 0 || snap.Warnings != 0 || len(snap.Objects) != 0 {
		t.Errorf("restart did not reset: %+v", snap)
	}
}

func TestRunnerRender(t *testing.T) {
	g := newTestGame(t, nil)
	g.objects.Add(sim.Object{Kind: sim.KindObstacle, Key: "cactus", Box: core.NewBox(200, 310, 40, 40)})
	g.warnings = 4

	screen := core.NewScreen(80, 24)
	g.Render(screen, g.Snapshot())
	out := screen.String()

	for _, want := range []string{"Score: 0", "Warnings: 4/5", "DANGER!", "Ψ", "@", "═"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	g.lift = 60
	screen.Clear()
	g.Render(screen, g.Snapshot())
	if !strings.Contains(screen.String(), "JUMP!") {
		t.Error("lifted player should show JUMP!")
	}
}

func TestRunnerFactory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	game, err := registry.Create(ID, registry.Options{Difficulty: "hard", Seed: 3})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if game.Snapshot().MaxWarnings != 3 {
		t.Errorf("hard preset MaxWarnings = %d, want 3", game.Snapshot().MaxWarnings)
	}

	if _, err := registry.Create(ID, registry.Options{Difficulty: "impossible"}); err == nil {
		t.Error("unknown difficulty should fail")
	}
}
