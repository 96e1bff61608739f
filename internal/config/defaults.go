package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/catcher.yaml
var defaultCatcherYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Playfield: RunnerPlayfield{
			Playfield:    Playfield{Width: 400, Height: 400},
			GroundOffset: 50,
		},
		Player: RunnerPlayer{X: 50, Width: 40, Height: 40, Glyph: "@"},
		Lift:   RunnerLift{Rate: 600, Max: 120, Clearance: 20},
		Rules:  RunnerRules{MaxWarnings: 5},
		Spawn: RunnerSpawn{
			Table: []SpawnEntry{
				{Key: "cactus", Kind: "obstacle", Weight: 0.7, Width: 40, Height: 40, Glyph: "Ψ", Color: "green"},
				{Key: "coin", Kind: "bonus", Weight: 0.3, Value: 1000, Width: 40, Height: 40, Glyph: "o", Color: "yellow"},
			},
			ClusterChance:  0.3,
			ClusterMin:     2,
			ClusterMax:     3,
			ClusterSpacing: 30,
		},
		Curve: RunnerCurve{
			BaseSpeed:      200,
			SpeedGain:      1.5,
			DistanceScale:  0.01,
			BaseIntervalMs: 1500,
			IntervalDecay:  10,
			FloorMs:        600,
		},
	}
}

// DefaultCatcherConfig returns the built-in catcher configuration.
func DefaultCatcherConfig() CatcherConfig {
	return CatcherConfig{
		Playfield: Playfield{Width: 400, Height: 400},
		Player:    CatcherPlayer{Width: 60, Height: 30, BottomOffset: 40, StartLane: 1, Glyph: "="},
		Rules: CatcherRules{
			TimeLimit:    60,
			StartLevel:   1,
			HazardPolicy: HazardEndSession,
			MaxWarnings:  3,
		},
		Spawn: CatcherSpawn{
			SpawnY: -30,
			Table: []SpawnEntry{
				{Key: "1k", Kind: "bonus", Weight: 0.6, Value: 1000, Speed: 100, Width: 30, Height: 15, Glyph: "1", Color: "white"},
				{Key: "5k", Kind: "bonus", Weight: 0.25, Value: 5000, Speed: 150, Width: 30, Height: 15, Glyph: "5", Color: "cyan"},
				{Key: "10k", Kind: "bonus", Weight: 0.1, Value: 10000, Speed: 200, Width: 30, Height: 15, Glyph: "$", Color: "green"},
				{Key: "50k", Kind: "bonus", Weight: 0.04, Value: 50000, Speed: 300, Width: 30, Height: 15, Glyph: "*", Color: "yellow"},
				{Key: "scammer", Kind: "hazard", Weight: 0.01, Speed: 200, Width: 30, Height: 15, Glyph: "X", Color: "red"},
			},
		},
		Curve: CatcherCurve{
			LevelSpeedGain: 0.1,
			BaseIntervalMs: 1000,
			IntervalDecay:  50,
			FloorMs:        400,
			LevelThreshold: 50000,
		},
	}
}
