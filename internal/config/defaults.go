package config

import (
	_ "embed"
)

//go:embed defaults/bricker.yaml
var defaultBrickerYAML []byte

// DefaultBrickerConfig returns the built-in configuration.
func DefaultBrickerConfig() BrickerConfig {
	return BrickerConfig{
		Grid: GridConfig{
			Rows:        7,
			Columns:     8,
			BrickHeight: 1,
			Padding:     1,
			TopMargin:   1,
		},
		Strategies: StrategyConfig{
			SampleSpace: 10,
			MaxDepth:    2,
			PuckCount:   2,
		},
		Physics: PhysicsConfig{
			BallSpeed:   300,
			PuckSpeed:   300,
			PaddleSpeed: 1000,
			HeartSpeed:  150,
		},
		Paddle: PaddleConfig{
			Width:        10,
			ExtraWidth:   10,
			ExtraMaxHits: 4,
		},
		Lives: LivesConfig{
			Initial: 3,
			Max:     4,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 56,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}
