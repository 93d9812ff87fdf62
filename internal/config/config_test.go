package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(defaultBrickerYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultBrickerConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadBrickerCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  rows: 3\nstrategies:\n  sample_space: 4\n"), 0o644))

	cfg, src, err := LoadBricker(path)
	require.NoError(t, err)
	assert.Equal(t, SourceCustom, src)
	assert.Equal(t, 3, cfg.Grid.Rows)
	assert.Equal(t, 8, cfg.Grid.Columns, "unset keys keep defaults")
	assert.Equal(t, 4, cfg.Strategies.SampleSpace)
	assert.Equal(t, 2, cfg.Strategies.MaxDepth)
}

func TestLoadBrickerCustomPathFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	cfg, src, err := LoadBricker(missing)
	assert.ErrorContains(t, err, missing)
	assert.Equal(t, SourceEmbedded, src)
	assert.Equal(t, DefaultBrickerConfig(), cfg)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("grid: [unclosed"), 0o644))
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "bricker.yaml"), []byte("grid:\n  rows: 2\n"), 0o644))
	cfg, src, err = LoadBricker(bad)
	assert.ErrorContains(t, err, "parse "+bad)
	assert.Equal(t, SourceLocal, src, "search continues past the bad file")
	assert.Equal(t, 2, cfg.Grid.Rows)
}

func TestLoadBrickerReportsBadUserFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	userDir := filepath.Join(home, ".bricker", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	userFile := filepath.Join(userDir, "bricker.yaml")
	require.NoError(t, os.WriteFile(userFile, []byte("lives: {initial: [3"), 0o644))

	cfg, src, err := LoadBricker("")
	assert.ErrorContains(t, err, userFile)
	assert.Equal(t, SourceEmbedded, src)
	assert.Equal(t, 7, cfg.Grid.Rows)
}

func TestLoadBrickerSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, src, err := LoadBricker("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, src)
	assert.Equal(t, 7, cfg.Grid.Rows)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "bricker.yaml"), []byte("grid:\n  rows: 2\n"), 0o644))
	cfg, src, err = LoadBricker("")
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, src)
	assert.Equal(t, 2, cfg.Grid.Rows)

	userDir := filepath.Join(home, ".bricker", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "bricker.yaml"), []byte("grid:\n  rows: 5\n"), 0o644))
	cfg, src, err = LoadBricker("")
	require.NoError(t, err)
	assert.Equal(t, SourceUser, src)
	assert.Equal(t, 5, cfg.Grid.Rows)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BrickerConfig)
		ok     bool
	}{
		{"defaults", func(*BrickerConfig) {}, true},
		{"zero rows", func(c *BrickerConfig) { c.Grid.Rows = 0 }, false},
		{"negative columns", func(c *BrickerConfig) { c.Grid.Columns = -1 }, false},
		{"zero sample space", func(c *BrickerConfig) { c.Strategies.SampleSpace = 0 }, false},
		{"negative padding", func(c *BrickerConfig) { c.Grid.Padding = -2 }, false},
		{"zero padding", func(c *BrickerConfig) { c.Grid.Padding = 0 }, true},
		{"lives above max", func(c *BrickerConfig) { c.Lives.Initial = 9 }, false},
		{"no pucks", func(c *BrickerConfig) { c.Strategies.PuckCount = 0 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBrickerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultBrickerConfig()
	cfg.Grid.Rows = 0
	cfg.Strategies.SampleSpace = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid.rows")
	assert.Contains(t, err.Error(), "strategies.sample_space")
}

func TestApplyBrickerPreset(t *testing.T) {
	cfg := DefaultBrickerConfig()
	ApplyBrickerPreset(&cfg, DifficultyEasy)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 5, cfg.Lives.Initial)
	assert.Equal(t, 5, cfg.Lives.Max)
	assert.Equal(t, 250, cfg.Physics.BallSpeed)
	assert.NoError(t, cfg.Validate())

	cfg = DefaultBrickerConfig()
	ApplyBrickerPreset(&cfg, DifficultyHard)
	assert.InDelta(t, 0.7, cfg.Difficulty.InitialLevel, 1e-9)
	assert.Equal(t, 2, cfg.Lives.Initial)
	assert.NoError(t, cfg.Validate())

	cfg = DefaultBrickerConfig()
	ApplyBrickerPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)
	assert.Equal(t, DefaultBrickerConfig().Physics, cfg.Physics)
}

func TestParsePreset(t *testing.T) {
	p, ok := ParsePreset("")
	assert.True(t, ok)
	assert.Equal(t, DifficultyNormal, p)

	p, ok = ParsePreset("hard")
	assert.True(t, ok)
	assert.Equal(t, DifficultyHard, p)

	_, ok = ParsePreset("nightmare")
	assert.False(t, ok)
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultBrickerConfig().Difficulty
	d := NewDifficultyManager(cfg)
	assert.False(t, d.IsEnabled())
	assert.Equal(t, 300, d.Speed(300, 56, 0))

	cfg.Enabled = true
	d = NewDifficultyManager(cfg)
	assert.True(t, d.IsEnabled())
	assert.InDelta(t, 0.0, d.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.5, d.Level(28, 0), 1e-9)
	assert.InDelta(t, 1.0, d.Level(500, 0), 1e-9, "clamped at max")
	assert.Equal(t, 450, d.Speed(300, 56, 0))

	cfg.Progression.Type = "time"
	cfg.InitialLevel = 0.5
	d = NewDifficultyManager(cfg)
	assert.InDelta(t, 0.75, d.Level(0, 28), 1e-9)

	cfg.Progression.Type = "none"
	d = NewDifficultyManager(cfg)
	assert.False(t, d.IsEnabled())
	assert.InDelta(t, 0.5, d.Level(100, 100), 1e-9)
}
