package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", name)
	}
}

// ApplyRunnerPreset adjusts the runner for a preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	cfg.Curve.Fixed = preset == DifficultyFixed

	switch preset {
	case DifficultyEasy:
		cfg.Rules.MaxWarnings = 7
		cfg.Curve.SpeedGain *= 0.5
		cfg.Spawn.ClusterChance = 0.15
	case DifficultyHard:
		cfg.Rules.MaxWarnings = 3
		cfg.Curve.BaseSpeed *= 1.25
		cfg.Spawn.ClusterChance = 0.45
	}
}

// ApplyCatcherPreset adjusts the catcher for a preset.
func ApplyCatcherPreset(cfg *CatcherConfig, preset DifficultyPreset) {
	cfg.Curve.Fixed = preset == DifficultyFixed

	switch preset {
	case DifficultyEasy:
		cfg.Rules.TimeLimit = 90
		cfg.Curve.LevelSpeedGain = 0.05
	case DifficultyHard:
		cfg.Rules.TimeLimit = 45
		cfg.Rules.StartLevel = 3
	}
}
