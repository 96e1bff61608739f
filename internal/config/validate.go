package config

import (
	"errors"
	"fmt"

	"github.com/hongjigr-sebon/tmposegame/internal/sim"
)

// Validate checks the runner configuration for values the game cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, errors.New("playfield must have a positive size"))
	}
	if g := c.Playfield.GroundY(); g <= 0 || g > c.Playfield.Height {
		errs = append(errs, fmt.Errorf("ground_offset %v puts the ground outside the playfield", c.Playfield.GroundOffset))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player must have a positive size"))
	}
	if c.Player.X < 0 || c.Player.X+c.Player.Width > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("player x %v is outside the playfield", c.Player.X))
	}
	if c.Lift.Rate <= 0 || c.Lift.Max <= 0 {
		errs = append(errs, errors.New("lift rate and max must be positive"))
	}
	if c.Lift.Clearance < 0 || c.Lift.Clearance > c.Lift.Max {
		errs = append(errs, fmt.Errorf("clearance %v must be within [0, %v]", c.Lift.Clearance, c.Lift.Max))
	}
	if c.Rules.MaxWarnings < 1 {
		errs = append(errs, errors.New("max_warnings must be at least 1"))
	}
	if c.Spawn.ClusterMin < 1 || c.Spawn.ClusterMax < c.Spawn.ClusterMin {
		errs = append(errs, fmt.Errorf("cluster size range [%d, %d] is invalid", c.Spawn.ClusterMin, c.Spawn.ClusterMax))
	}
	if c.Curve.FloorMs <= 0 {
		errs = append(errs, errors.New("curve floor_ms must be positive"))
	}
	errs = append(errs, validateTable(c.Spawn.Table)...)
	return wrap("runner", errs)
}

// Validate checks the catcher configuration.
func (c CatcherConfig) Validate() error {
	var errs []error
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, errors.New("playfield must have a positive size"))
	}
	if c.Player.Width <= 0 || c.Player.Width > c.Playfield.Width/3 {
		errs = append(errs, fmt.Errorf("player width %v must fit in one lane", c.Player.Width))
	}
	if c.Player.BottomOffset < c.Player.Height || c.Player.BottomOffset > c.Playfield.Height {
		errs = append(errs, fmt.Errorf("bottom_offset %v must be within [height, playfield height]", c.Player.BottomOffset))
	}
	if c.Player.StartLane < 0 || c.Player.StartLane > 2 {
		errs = append(errs, fmt.Errorf("start_lane %d must be 0, 1 or 2", c.Player.StartLane))
	}
	if c.Rules.TimeLimit < 1 {
		errs = append(errs, errors.New("time_limit must be at least 1 second"))
	}
	if c.Rules.StartLevel < 1 {
		errs = append(errs, errors.New("start_level must be at least 1"))
	}
	switch c.Rules.HazardPolicy {
	case HazardEndSession:
	case HazardWarning:
		if c.Rules.MaxWarnings < 1 {
			errs = append(errs, errors.New("max_warnings must be at least 1 with the warning hazard policy"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown hazard_policy %q", c.Rules.HazardPolicy))
	}
	if c.Curve.FloorMs <= 0 {
		errs = append(errs, errors.New("curve floor_ms must be positive"))
	}
	errs = append(errs, validateTable(c.Spawn.Table)...)
	return wrap("catcher", errs)
}

func validateTable(table []SpawnEntry) []error {
	var errs []error
	entries := make([]sim.Entry[string], 0, len(table))
	for _, e := range table {
		if e.Key == "" {
			errs = append(errs, errors.New("spawn entry without key"))
		}
		if _, ok := sim.ParseKind(e.Kind); !ok {
			errs = append(errs, fmt.Errorf("spawn entry %q has unknown kind %q", e.Key, e.Kind))
		}
		if e.Width <= 0 || e.Height <= 0 {
			errs = append(errs, fmt.Errorf("spawn entry %q must have a positive size", e.Key))
		}
		entries = append(entries, sim.Entry[string]{Value: e.Key, Weight: e.Weight})
	}
	if _, err := sim.NewWeightedTable(entries...); err != nil {
		errs = append(errs, fmt.Errorf("spawn table: %w", err))
	}
	return errs
}

func wrap(game string, errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid %s config: %w", game, errors.Join(errs...))
}
