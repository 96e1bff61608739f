package runner

import (
	"github.com/hongjigr-sebon/tmposegame/internal/config"
	"github.com/hongjigr-sebon/tmposegame/internal/core"
	"github.com/hongjigr-sebon/tmposegame/internal/sim"
)

// spawnType is a validated spawn table row.
type spawnType struct {
	entry config.SpawnEntry
	kind  sim.Kind
}

// spawner builds spawn batches at the right edge of the playfield.
type spawner struct {
	cfg   config.RunnerConfig
	rng   sim.RandomSource
	table *sim.WeightedTable[spawnType]
}

func newSpawner(cfg config.RunnerConfig, rng sim.RandomSource) (*spawner, error) {
	entries := make([]sim.Entry[spawnType], 0, len(cfg.Spawn.Table))
	for _, e := range cfg.Spawn.Table {
		kind, _ := sim.ParseKind(e.Kind)
		entries = append(entries, sim.Entry[spawnType]{
			Value:  spawnType{entry: e, kind: kind},
			Weight: e.Weight,
		})
	}
	table, err := sim.NewWeightedTable(entries...)
	if err != nil {
		return nil, err
	}
	return &spawner{cfg: cfg, rng: rng, table: table}, nil
}

// batch draws one spawn type. Obstacles may expand into a cluster that must
// be cleared in a single lift.
func (s *spawner) batch(speed float64) []sim.Object {
	t := s.table.Draw(s.rng)

	count := 1
	sp := s.cfg.Spawn
	if t.kind == sim.KindObstacle && sim.Chance(s.rng, sp.ClusterChance) {
		count = sp.ClusterMin + sim.IntN(s.rng, sp.ClusterMax-sp.ClusterMin+1)
	}

	ground := s.cfg.Playfield.GroundY()
	objs := make([]sim.Object, 0, count)
	for i := 0; i < count; i++ {
		x := s.cfg.Playfield.Width + float64(i)*sp.ClusterSpacing
		objs = append(objs, sim.Object{
			Kind:  t.kind,
			Key:   t.entry.Key,
			Box:   core.NewBox(x, ground-t.entry.Height, t.entry.Width, t.entry.Height),
			Speed: speed,
			Value: t.entry.Value,
		})
	}
	return objs
}
