package config

import "math"

// RunnerCurve maps runner distance to scroll speed and spawn interval.
type RunnerCurve struct {
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedGain      float64 `yaml:"speed_gain"`     // speed added per unit of distance
	DistanceScale  float64 `yaml:"distance_scale"` // distance gained per unit travelled
	BaseIntervalMs float64 `yaml:"base_interval_ms"`
	IntervalDecay  float64 `yaml:"interval_decay"` // ms removed per unit of distance
	FloorMs        float64 `yaml:"floor_ms"`
	Fixed          bool    `yaml:"fixed"` // disables progression
}

// Speed returns the scroll speed at the given distance.
func (c RunnerCurve) Speed(distance float64) float64 {
	if c.Fixed {
		return c.BaseSpeed
	}
	return c.BaseSpeed + distance*c.SpeedGain
}

// SpawnInterval returns the gap between spawn batches at the given distance.
func (c RunnerCurve) SpawnInterval(distance float64) float64 {
	if c.Fixed {
		return math.Max(c.FloorMs, c.BaseIntervalMs)
	}
	return math.Max(c.FloorMs, c.BaseIntervalMs-distance*c.IntervalDecay)
}

// Advance returns the distance after travelling at speed for dt seconds.
func (c RunnerCurve) Advance(distance, speed, dt float64) float64 {
	return distance + speed*dt*c.DistanceScale
}

// CatcherCurve maps the catcher level to item speed and spawn interval.
type CatcherCurve struct {
	LevelSpeedGain float64 `yaml:"level_speed_gain"`
	BaseIntervalMs float64 `yaml:"base_interval_ms"`
	IntervalDecay  float64 `yaml:"interval_decay"` // ms removed per level
	FloorMs        float64 `yaml:"floor_ms"`
	LevelThreshold int     `yaml:"level_threshold"` // points per level
	Fixed          bool    `yaml:"fixed"`
}

// ObjectSpeed scales an item's base speed by level.
func (c CatcherCurve) ObjectSpeed(base float64, level int) float64 {
	if c.Fixed {
		return base
	}
	return base * (1 + float64(level)*c.LevelSpeedGain)
}

// SpawnInterval returns the gap between spawns at the given level.
func (c CatcherCurve) SpawnInterval(level int) float64 {
	if c.Fixed {
		return math.Max(c.FloorMs, c.BaseIntervalMs)
	}
	return math.Max(c.FloorMs, c.BaseIntervalMs-float64(level)*c.IntervalDecay)
}

// LevelFor raises level while score exceeds level × threshold.
func (c CatcherCurve) LevelFor(score, level int) int {
	if c.Fixed || c.LevelThreshold <= 0 {
		return level
	}
	for score > level*c.LevelThreshold {
		level++
	}
	return level
}
