package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadBricker loads the Bricker configuration.
// Search order: customPath -> ~/.bricker/configs/bricker.yaml -> ./configs/bricker.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
// A file that cannot be read or parsed is skipped and the search goes on. The
// returned config is always usable; a non-nil error lists the skipped files.
func LoadBricker(customPath string) (BrickerConfig, Source, error) {
	var skipped []error

	candidates := make([]candidate, 0, 3)
	if customPath != "" {
		candidates = append(candidates, candidate{customPath, SourceCustom, true})
	}
	if userCfgPath := userConfigPath("bricker.yaml"); userCfgPath != "" {
		candidates = append(candidates, candidate{userCfgPath, SourceUser, false})
	}
	candidates = append(candidates, candidate{filepath.Join("configs", "bricker.yaml"), SourceLocal, false})

	for _, c := range candidates {
		data, err := os.ReadFile(c.path)
		if err != nil {
			// Missing files in the default locations are the normal case.
			if c.explicit || !errors.Is(err, fs.ErrNotExist) {
				skipped = append(skipped, fmt.Errorf("config: read %s: %w", c.path, err))
			}
			continue
		}
		cfg, err := parse(data)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("config: parse %s: %w", c.path, err))
			continue
		}
		return cfg, c.source, errors.Join(skipped...)
	}

	cfg, err := parse(defaultBrickerYAML)
	if err != nil {
		return DefaultBrickerConfig(), SourceBuiltin, errors.Join(skipped...)
	}
	return cfg, SourceEmbedded, errors.Join(skipped...)
}

type candidate struct {
	path     string
	source   Source
	explicit bool
}

func parse(data []byte) (BrickerConfig, error) {
	cfg := DefaultBrickerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bricker", "configs", filename)
}

// Validate reports every setting that would make a session unplayable.
func (c BrickerConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be positive, got %d", name, v))
		}
	}
	positive("grid.rows", c.Grid.Rows)
	positive("grid.columns", c.Grid.Columns)
	positive("grid.brick_height", c.Grid.BrickHeight)
	positive("strategies.sample_space", c.Strategies.SampleSpace)
	positive("strategies.max_depth", c.Strategies.MaxDepth)
	positive("physics.ball_speed", c.Physics.BallSpeed)
	positive("physics.puck_speed", c.Physics.PuckSpeed)
	positive("physics.paddle_speed", c.Physics.PaddleSpeed)
	positive("physics.heart_speed", c.Physics.HeartSpeed)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.extra_width", c.Paddle.ExtraWidth)
	positive("paddle.extra_max_hits", c.Paddle.ExtraMaxHits)
	positive("lives.initial", c.Lives.Initial)
	positive("lives.max", c.Lives.Max)

	if c.Grid.Padding < 0 {
		errs = append(errs, fmt.Errorf("config: grid.padding must not be negative, got %d", c.Grid.Padding))
	}
	if c.Strategies.PuckCount < 0 {
		errs = append(errs, fmt.Errorf("config: strategies.puck_count must not be negative, got %d", c.Strategies.PuckCount))
	}
	if c.Lives.Initial > c.Lives.Max {
		errs = append(errs, fmt.Errorf("config: lives.initial (%d) exceeds lives.max (%d)", c.Lives.Initial, c.Lives.Max))
	}
	return errors.Join(errs...)
}

// ApplyBrickerPreset modifies the config based on a difficulty preset.
func ApplyBrickerPreset(cfg *BrickerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Lives.Max = max(cfg.Lives.Max, 5)
		cfg.Lives.Initial = cfg.Lives.Max
		cfg.Paddle.Width = 14
		cfg.Physics.BallSpeed = 250
	case DifficultyHard:
		cfg.Lives.Initial = 2
		cfg.Paddle.Width = 7
		cfg.Physics.BallSpeed = 400
	}
}
