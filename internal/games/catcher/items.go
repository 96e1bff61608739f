package catcher

import (
	"github.com/hongjigr-sebon/tmposegame/internal/config"
	"github.com/hongjigr-sebon/tmposegame/internal/core"
	"github.com/hongjigr-sebon/tmposegame/internal/sim"
)

type spawnType struct {
	entry config.SpawnEntry
	kind  sim.Kind
}

func buildTable(rows []config.SpawnEntry) (*sim.WeightedTable[spawnType], error) {
	entries := make([]sim.Entry[spawnType], 0, len(rows))
	for _, e := range rows {
		kind, _ := sim.ParseKind(e.Kind)
		entries = append(entries, sim.Entry[spawnType]{
			Value:  spawnType{entry: e, kind: kind},
			Weight: e.Weight,
		})
	}
	return sim.NewWeightedTable(entries...)
}

// spawn drops one item into a uniformly chosen lane. Its speed is fixed now,
// from the item's base speed and the current level.
func (g *Game) spawn() sim.Object {
	t := g.table.Draw(g.rng)
	lane := sim.IntN(g.rng, Lanes)
	e := t.entry

	return sim.Object{
		Kind:  t.kind,
		Key:   e.Key,
		Box:   core.NewBox(g.laneCenter(lane)-e.Width/2, g.cfg.Spawn.SpawnY, e.Width, e.Height),
		Speed: g.cfg.Curve.ObjectSpeed(e.Speed, g.level),
		Value: e.Value,
	}
}
