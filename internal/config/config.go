// Package config provides YAML-based game configuration loading and
// difficulty management for Bricker.
package config

// BrickerConfig contains all configuration for a Bricker session.
type BrickerConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Strategies StrategyConfig   `yaml:"strategies"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Lives      LivesConfig      `yaml:"lives"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the brick wall.
type GridConfig struct {
	Rows        int `yaml:"rows"`
	Columns     int `yaml:"columns"`
	BrickHeight int `yaml:"brick_height"` // in cells
	Padding     int `yaml:"padding"`      // gap between bricks, in cells
	TopMargin   int `yaml:"top_margin"`   // rows between the HUD and the first brick row
}

// StrategyConfig defines how brick behaviors are assigned.
type StrategyConfig struct {
	SampleSpace int `yaml:"sample_space"` // draws above 5 give a basic brick
	MaxDepth    int `yaml:"max_depth"`    // nesting limit for composite bricks
	PuckCount   int `yaml:"puck_count"`
}

// PhysicsConfig defines speeds in fixed-point units per tick (1000 = 1 cell).
type PhysicsConfig struct {
	BallSpeed   int `yaml:"ball_speed"`
	PuckSpeed   int `yaml:"puck_speed"`
	PaddleSpeed int `yaml:"paddle_speed"`
	HeartSpeed  int `yaml:"heart_speed"`
}

// PaddleConfig defines the main and extra paddles.
type PaddleConfig struct {
	Width        int `yaml:"width"`
	ExtraWidth   int `yaml:"extra_width"`
	ExtraMaxHits int `yaml:"extra_max_hits"` // ball hits before the extra paddle vanishes
}

// LivesConfig defines the life counter.
type LivesConfig struct {
	Initial int `yaml:"initial"`
	Max     int `yaml:"max"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
