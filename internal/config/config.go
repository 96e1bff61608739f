// Package config provides YAML-based game configuration, difficulty curves
// and presets, and environment-driven platform settings.
package config

// Playfield is the world size in abstract units. Renderers scale it to the
// terminal, so the simulation never depends on the window size.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpawnEntry is one row of a spawn table.
type SpawnEntry struct {
	Key    string  `yaml:"key"`
	Kind   string  `yaml:"kind"` // obstacle, bonus or hazard
	Weight float64 `yaml:"weight"`
	Value  int     `yaml:"value"`
	Speed  float64 `yaml:"speed"` // base fall speed, catcher only
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
}

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	Playfield RunnerPlayfield `yaml:"playfield"`
	Player    RunnerPlayer    `yaml:"player"`
	Lift      RunnerLift      `yaml:"lift"`
	Rules     RunnerRules     `yaml:"rules"`
	Spawn     RunnerSpawn     `yaml:"spawn"`
	Curve     RunnerCurve     `yaml:"curve"`
}

// RunnerPlayfield adds the ground line to the playfield.
type RunnerPlayfield struct {
	Playfield    `yaml:",inline"`
	GroundOffset float64 `yaml:"ground_offset"` // distance from the bottom edge to the ground
}

// GroundY returns the y-coordinate of the ground line.
func (p RunnerPlayfield) GroundY() float64 {
	return p.Height - p.GroundOffset
}

// RunnerPlayer defines the runner's fixed position and hitbox.
type RunnerPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Glyph  string  `yaml:"glyph"`
}

// RunnerLift defines the hold-to-rise vertical motion.
type RunnerLift struct {
	Rate      float64 `yaml:"rate"`      // units per second, up and down
	Max       float64 `yaml:"max"`       // highest lift
	Clearance float64 `yaml:"clearance"` // lift at or above which obstacles are cleared
}

// RunnerRules defines scoring and termination.
type RunnerRules struct {
	MaxWarnings int `yaml:"max_warnings"`
}

// RunnerSpawn defines what appears and how obstacles cluster.
type RunnerSpawn struct {
	Table          []SpawnEntry `yaml:"table"`
	ClusterChance  float64      `yaml:"cluster_chance"`
	ClusterMin     int          `yaml:"cluster_min"`
	ClusterMax     int          `yaml:"cluster_max"`
	ClusterSpacing float64      `yaml:"cluster_spacing"`
}

// CatcherConfig contains all configuration for the catcher game.
type CatcherConfig struct {
	Playfield Playfield     `yaml:"playfield"`
	Player    CatcherPlayer `yaml:"player"`
	Rules     CatcherRules  `yaml:"rules"`
	Spawn     CatcherSpawn  `yaml:"spawn"`
	Curve     CatcherCurve  `yaml:"curve"`
}

// CatcherPlayer defines the catcher's basket.
type CatcherPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // distance from the bottom edge to the basket top
	StartLane    int     `yaml:"start_lane"`
	Glyph        string  `yaml:"glyph"`
}

// Hazard policies for the catcher.
const (
	HazardEndSession = "end_session"
	HazardWarning    = "warning"
)

// CatcherRules defines the timer, level threshold and hazard handling.
type CatcherRules struct {
	TimeLimit    int    `yaml:"time_limit"` // seconds
	StartLevel   int    `yaml:"start_level"`
	HazardPolicy string `yaml:"hazard_policy"`
	MaxWarnings  int    `yaml:"max_warnings"` // used by the warning policy
}

// CatcherSpawn defines falling items.
type CatcherSpawn struct {
	Table  []SpawnEntry `yaml:"table"`
	SpawnY float64      `yaml:"spawn_y"` // items appear here, above the visible area
}
