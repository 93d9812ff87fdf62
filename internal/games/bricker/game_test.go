package bricker

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MattiBlue123/Bricker-Game/internal/assets"
	"github.com/MattiBlue123/Bricker-Game/internal/bricks"
	"github.com/MattiBlue123/Bricker-Game/internal/core"
	"github.com/MattiBlue123/Bricker-Game/internal/engine"
	"github.com/MattiBlue123/Bricker-Game/internal/objects"
	"github.com/MattiBlue123/Bricker-Game/internal/registry"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

// isolate keeps user and working-directory config files out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func newGame(t *testing.T, mode Mode, opts registry.Options) *Game {
	t.Helper()
	isolate(t)
	g, err := New(mode, opts)
	require.NoError(t, err)
	g.Reset(testRuntime)
	return g
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func input(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// dropBall puts the ball well below the window so the next step loses it.
func dropBall(g *Game) {
	g.ball.SetCenter(engine.Vec{X: engine.ToFixed(40), Y: engine.ToFixed(testRuntime.ScreenH + 6)})
}

func TestResetBuildsSession(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{})

	assert.Equal(t, "bricker", g.ID())
	assert.Equal(t, "Bricker", g.Title())
	assert.Equal(t, StatePlaying, g.StateName())
	assert.Equal(t, 56, g.BricksLeft())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 3, g.Lives())
	assert.Len(t, g.board.Bricks, 56)
	assert.False(t, g.slot.Active())

	// Three walls and every brick are static; paddle and ball move.
	assert.Equal(t, 3+56, g.world.Entities.Len(engine.LayerStatic))
	assert.Equal(t, 2, g.world.Entities.Len(engine.LayerDefault))
	assert.Equal(t, 1, g.world.Entities.Len(engine.LayerBackground))

	assert.Equal(t, engine.Fixed(300), g.ball.Vel.X.Abs())
	assert.Equal(t, engine.Fixed(300), g.ball.Vel.Y.Abs())
}

func TestOptionsOverrideGrid(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{Columns: 3, Rows: 2})
	assert.Equal(t, 6, g.BricksLeft())
	assert.Equal(t, 3, g.Config().Grid.Columns)
	assert.Equal(t, 2, g.Config().Grid.Rows)
}

func TestNewRejectsBadSettings(t *testing.T) {
	isolate(t)

	_, err := New(ModeClassic, registry.Options{Difficulty: "nightmare"})
	assert.ErrorContains(t, err, "nightmare")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lives:\n  initial: 9\n  max: 4\n"), 0o644))
	_, err = New(ModeClassic, registry.Options{ConfigPath: path})
	assert.ErrorContains(t, err, "lives.initial")
}

func TestUnreadableConfigFallsBackWithWarning(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	userDir := filepath.Join(home, ".bricker", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "bricker.yaml"), []byte("grid: [rows"), 0o644))

	var buf bytes.Buffer
	g, err := New(ModeClassic, registry.Options{Logger: log.New(&buf)})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "config files skipped")
	assert.Contains(t, buf.String(), "bricker.yaml")
	assert.Equal(t, 7, g.Config().Grid.Rows, "embedded defaults apply")

	buf.Reset()
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	g, err = New(ModeClassic, registry.Options{Logger: log.New(&buf), ConfigPath: missing})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "missing.yaml")
	assert.Equal(t, 8, g.Config().Grid.Columns)
}

func TestDifficultyPresetApplied(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{Difficulty: "hard"})
	assert.Equal(t, 2, g.Lives())
	assert.Equal(t, 7, g.Config().Paddle.Width)
	assert.Equal(t, 400, g.Config().Physics.BallSpeed)
	assert.Equal(t, engine.Fixed(g.difficulty.Speed(400, 0, 0)), g.ball.Vel.X.Abs())
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%40 < 15:
			inputs[i].Set(core.ActionLeft)
		case i%40 < 30:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := newGame(t, ModeChaos, registry.Options{})
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	assert.Equal(t, snap1.Hash(), snap2.Hash())
	assert.Equal(t, snap1, snap2)
	assert.Positive(t, snap1.Tick)
}

func TestSnapshotTracksGrid(t *testing.T) {
	// Sample space 1 makes every brick a puck brick.
	path := filepath.Join(t.TempDir(), "pucks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategies:\n  sample_space: 1\n"), 0o644))
	g := newGame(t, ModeClassic, registry.Options{ConfigPath: path, Columns: 2, Rows: 1})

	snap := g.Snapshot()
	assert.Equal(t, []int{1, 1}, snap.CellData)
	assert.Equal(t, 2, snap.MoverCount)

	g.board.Bricks[0].OnCollisionEnter(g.ball, engine.Collision{})
	snap = g.Snapshot()
	assert.Equal(t, []int{5, 1}, snap.CellData)
	assert.Equal(t, 1, snap.BricksLeft)
	assert.Equal(t, 1, snap.Score)
	assert.Equal(t, 4, snap.MoverCount, "two pucks joined the ball and paddle")
}

func TestClearingWallWins(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{})
	g.env.Counter.Add(-g.env.Counter.Value())

	res := g.Step(noInput())
	assert.True(t, res.State.GameOver)
	assert.Equal(t, core.OutcomeWin, res.State.Outcome)
	assert.Equal(t, StateWin, g.StateName())

	// No more simulation after the end.
	tick := g.tick
	g.Step(noInput())
	assert.Equal(t, tick, g.tick)
}

func TestLostBallSettledBeforeWin(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{})
	g.env.Counter.Add(-g.env.Counter.Value())
	dropBall(g)

	res := g.Step(noInput())
	assert.False(t, res.State.GameOver, "the lost ball is handled first")
	assert.Equal(t, 2, g.Lives())
	assert.Equal(t, g.env.Window.Div(2), g.ball.Center())

	res = g.Step(noInput())
	assert.Equal(t, core.OutcomeWin, res.State.Outcome)
	assert.Equal(t, 2, g.Lives())
}

func TestLastBallLostOnClearingTickLoses(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{})
	for range 2 {
		dropBall(g)
		g.Step(noInput())
	}
	require.Equal(t, 1, g.Lives())

	g.env.Counter.Add(-g.env.Counter.Value())
	dropBall(g)
	res := g.Step(noInput())
	assert.True(t, res.State.GameOver)
	assert.Equal(t, core.OutcomeLose, res.State.Outcome)
}

func TestWinKeyClearsWall(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{})

	res := g.Step(input(core.ActionWin))
	assert.True(t, res.State.GameOver)
	assert.Equal(t, core.OutcomeWin, res.State.Outcome)
	assert.Equal(t, 0, g.BricksLeft())
	assert.Equal(t, 56, g.Score())
	assert.Len(t, g.board.Bricks, 56, "bricks themselves are untouched")

	g.Step(input(core.ActionPause))
	require.Equal(t, StateWin, g.StateName())

	paused := newGame(t, ModeClassic, registry.Options{})
	paused.Step(input(core.ActionPause))
	paused.Step(input(core.ActionWin))
	assert.Equal(t, 56, paused.BricksLeft(), "ignored while paused")
}

func TestLostBallCostsLifeThenLoses(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{})

	dropBall(g)
	res := g.Step(noInput())
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 2, g.Lives())
	assert.Equal(t, g.env.Window.Div(2), g.ball.Center(), "ball returns to the center")

	dropBall(g)
	g.Step(noInput())
	dropBall(g)
	res = g.Step(noInput())
	assert.True(t, res.State.GameOver)
	assert.Equal(t, core.OutcomeLose, res.State.Outcome)
	assert.Equal(t, 0, g.Lives())

	result := g.SessionResult()
	assert.Equal(t, "bricker", result.Mode)
	assert.Equal(t, "lose", result.Outcome)
	assert.Equal(t, 0, result.LivesLeft)
	assert.Equal(t, 8, result.Columns)
	assert.Equal(t, 7, result.Rows)
	assert.Equal(t, int64(12345), result.Seed)
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{})
	g.Step(noInput())
	g.Step(input(core.ActionRestart))
	assert.Equal(t, 2, g.tick, "restart is ignored while playing")

	g.env.Counter.Add(-g.env.Counter.Value())
	g.Step(noInput())
	require.Equal(t, StateWin, g.StateName())

	g.Step(input(core.ActionRestart))
	assert.Equal(t, StatePlaying, g.StateName())
	assert.Equal(t, 0, g.tick)
	assert.Equal(t, 56, g.BricksLeft())
	assert.Equal(t, 3, g.Lives())
}

func TestRestartResetsSessionSingletons(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{})

	bricks.NewExtraPaddle(g.env).OnCollision(g.board.Bricks[0], g.ball)
	require.True(t, g.slot.Active())
	bricks.NewExploding(g.env).OnCollision(g.board.Bricks[1], g.ball)
	require.True(t, g.board.Grid.Exploded(g.board.Bricks[1].Coord()))

	for range 3 {
		dropBall(g)
		g.Step(noInput())
	}
	require.Equal(t, StateLose, g.StateName())

	g.Step(input(core.ActionRestart))
	require.Equal(t, StatePlaying, g.StateName())
	assert.False(t, g.slot.Active())
	for _, e := range g.world.Entities.Entities(engine.LayerDefault) {
		assert.NotEqual(t, objects.TagExtraPaddle, e.Object().Tag())
	}
	for row := range g.board.Grid.Rows() {
		for col := range g.board.Grid.Cols() {
			c := bricks.Coord{Row: row, Col: col}
			assert.True(t, g.board.Grid.Occupied(c))
			assert.False(t, g.board.Grid.Exploded(c), "cell %v", c)
		}
	}
	assert.Equal(t, 56, g.BricksLeft())
}

func TestPauseToggle(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{})

	res := g.Step(input(core.ActionPause))
	assert.True(t, res.State.Paused)
	before := g.ball.Center()
	g.Step(noInput())
	assert.Equal(t, 0, g.tick)
	assert.Equal(t, before, g.ball.Center())

	res = g.Step(input(core.ActionPause))
	assert.False(t, res.State.Paused)
	assert.Equal(t, 1, g.tick)
}

func TestSteeringMovesPaddle(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{})
	start := g.paddle.Center().X

	g.Step(input(core.ActionLeft))
	assert.Less(t, g.paddle.Center().X, start)

	for range 200 {
		g.Step(input(core.ActionLeft))
	}
	assert.GreaterOrEqual(t, g.paddle.Box.Pos.X, engine.ToFixed(1), "paddle stays inside the walls")
}

func TestRenderHUDAndEntities(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{})
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)

	hud := screen.Row(hudRow)
	assert.Contains(t, hud, "Bricks: 56/56")
	assert.Contains(t, hud, "♥♥♥· 3")
	assert.Contains(t, hud, "Bricker")

	assert.Contains(t, screen.Row(3), "▒")
	assert.Contains(t, screen.Row(testRuntime.ScreenH-2), "▀")
	assert.Contains(t, screen.String(), "●")
	assert.Equal(t, '░', screen.Get(0, 5))

	// Rows of bricks take their row color.
	first := g.board.Bricks[0].Box.Cells()
	assert.Equal(t, rowColors[0], screen.GetCell(first.X, first.Y).Color)
}

func TestRenderLivesColorFollowsCount(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{})
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)

	g.Render(screen)
	x := strings.IndexRune(screen.Row(hudRow), '♥')
	assert.Equal(t, core.ColorGreen, screen.GetCell(x, hudRow).Color)

	dropBall(g)
	g.Step(noInput())
	g.Render(screen)
	x = strings.IndexRune(screen.Row(hudRow), '♥')
	assert.Equal(t, core.ColorYellow, screen.GetCell(x, hudRow).Color)
}

func TestRenderOverlays(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{})
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)

	g.Step(input(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.Step(input(core.ActionPause))
	for range 3 {
		dropBall(g)
		g.Step(noInput())
	}
	g.Render(screen)
	assert.Contains(t, screen.String(), "You lose! Play again?")

	g.Step(input(core.ActionRestart))
	g.env.Counter.Add(-g.env.Counter.Value())
	g.Step(noInput())
	g.Render(screen)
	assert.Contains(t, screen.String(), "You win! Play again?")
}

func TestScreenTooSmall(t *testing.T) {
	isolate(t)
	g, err := New(ModeClassic, registry.Options{})
	require.NoError(t, err)
	g.Reset(core.RuntimeConfig{ScreenW: 16, ScreenH: 10, Seed: 1})

	g.Step(noInput())
	assert.Equal(t, 0, g.tick)

	screen := core.NewScreen(16, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestChaosModeHasNoBasicBricks(t *testing.T) {
	g := newGame(t, ModeChaos, registry.Options{})
	assert.Equal(t, "bricker_chaos", g.ID())
	assert.Equal(t, bricks.CompositeSampleSpace, g.Config().Strategies.SampleSpace)
	for _, b := range g.board.Bricks {
		assert.NotEqual(t, bricks.KindBasic, b.Strategy().Kind())
	}
}

func TestSoundsGoThroughLoader(t *testing.T) {
	loader := assets.NewMemoryLoader()
	g := newGame(t, ModeClassic, registry.Options{Assets: loader, Columns: 1, Rows: 1})
	assert.Equal(t, 1, loader.ImageLoads(assets.BackgroundImage))

	g.ball.OnCollisionEnter(g.board.Bricks[0], engine.Collision{Normal: engine.Normal{Y: 1}})
	assert.Equal(t, 1, loader.Sound(assets.BlopSound).Plays())
	assert.Positive(t, loader.ImageLoads(assets.BrickImage))
}

func TestSessionLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	g := newGame(t, ModeClassic, registry.Options{Logger: logger})
	dropBall(g)
	g.Step(noInput())

	out := buf.String()
	assert.Contains(t, out, "session started")
	assert.Contains(t, out, "life lost")
}

func TestRegisteredModes(t *testing.T) {
	isolate(t)
	assert.True(t, registry.Exists("bricker"))
	assert.True(t, registry.Exists("bricker_chaos"))

	g, err := registry.Create("bricker_chaos", registry.Options{})
	require.NoError(t, err)
	assert.Equal(t, "Bricker (Chaos)", g.Title())
}
