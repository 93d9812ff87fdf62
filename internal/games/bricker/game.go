// Package bricker is the Bricker game: a brick wall whose bricks each carry
// a collision strategy, a paddle, a ball and a small life counter.
package bricker

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/MattiBlue123/Bricker-Game/internal/assets"
	"github.com/MattiBlue123/Bricker-Game/internal/bricks"
	"github.com/MattiBlue123/Bricker-Game/internal/config"
	"github.com/MattiBlue123/Bricker-Game/internal/core"
	"github.com/MattiBlue123/Bricker-Game/internal/engine"
	"github.com/MattiBlue123/Bricker-Game/internal/objects"
	"github.com/MattiBlue123/Bricker-Game/internal/registry"
	"github.com/MattiBlue123/Bricker-Game/internal/storage"
)

// Session states
const (
	StatePlaying = "playing"
	StatePaused  = "paused"
	StateWin     = "win"
	StateLose    = "lose"
)

// Layout rows: the HUD sits on row 0 and the top wall on row 1.
const (
	hudRow     = 0
	topWallRow = 1
)

// Brick colors by row (cycling through)
var rowColors = []core.Color{
	core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen,
	core.ColorCyan, core.ColorBlue, core.ColorMagenta, core.ColorPink,
}

// Mode describes a registered variant.
type Mode struct {
	ID          string
	Title       string
	SampleSpace int // 0 uses the configured sample space
}

var (
	// ModeClassic is the standard game.
	ModeClassic = Mode{ID: "bricker", Title: "Bricker"}
	// ModeChaos makes every brick special.
	ModeChaos = Mode{ID: "bricker_chaos", Title: "Bricker (Chaos)", SampleSpace: bricks.CompositeSampleSpace}
)

// Game is one Bricker session.
type Game struct {
	mode       Mode
	cfg        config.BrickerConfig
	logger     *log.Logger
	loader     assets.Loader
	difficulty *config.DifficultyManager

	runtime core.RuntimeConfig
	rng     *core.SimpleRNG
	world   *engine.World
	env     *bricks.Env
	board   *bricks.Board

	lives    *objects.Lives
	slot     *objects.ExtraPaddleSlot
	steering *objects.Steering
	paddle   *objects.Paddle
	ball     *objects.Ball

	state     string
	tick      int
	total     int
	ballSpeed engine.Fixed

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game for mode. Config files that cannot be read are skipped
// with a warning; settings that fail validation are an error, so bad settings
// fail before any session starts.
func New(mode Mode, opts registry.Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix(mode.ID)

	cfg, source, err := config.LoadBricker(opts.ConfigPath)
	if err != nil {
		logger.Warn("config files skipped", "err", err, "using", source)
	}
	logger.Debug("config loaded", "source", source)
	if opts.Difficulty != "" {
		preset, ok := config.ParsePreset(opts.Difficulty)
		if !ok {
			return nil, fmt.Errorf("bricker: unknown difficulty %q", opts.Difficulty)
		}
		config.ApplyBrickerPreset(&cfg, preset)
	}
	if opts.Columns > 0 {
		cfg.Grid.Columns = opts.Columns
	}
	if opts.Rows > 0 {
		cfg.Grid.Rows = opts.Rows
	}
	if mode.SampleSpace > 0 {
		cfg.Strategies.SampleSpace = mode.SampleSpace
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loader := opts.Assets
	if loader == nil {
		loader = assets.NewMemoryLoader()
	}

	return &Game{
		mode:       mode,
		cfg:        cfg,
		logger:     logger,
		loader:     loader,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}, nil
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.mode.Title
}

// Config returns the effective configuration.
func (g *Game) Config() config.BrickerConfig {
	return g.cfg
}

// Reset starts a new session: fresh entities, counter, grid, lives and
// extra paddle slot.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = core.NewSimpleRNG(runtime.Seed)
	g.tick = 0
	g.state = StatePlaying

	cfg := g.cfg
	w, h := runtime.ScreenW, runtime.ScreenH
	brickTop := topWallRow + 1 + cfg.Grid.TopMargin

	g.minScreenW = max(20, cfg.Grid.Columns+2, cfg.Paddle.Width+2)
	g.minScreenH = brickTop + cfg.Grid.Rows*cfg.Grid.BrickHeight + 8
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH

	g.world = engine.NewWorld()
	g.lives = objects.NewLives(cfg.Lives.Initial, cfg.Lives.Max)
	g.slot = &objects.ExtraPaddleSlot{}
	g.steering = &objects.Steering{}

	settings := bricks.DefaultSettings(w, h)
	settings.PuckCount = cfg.Strategies.PuckCount
	settings.PuckSpeed = engine.Fixed(cfg.Physics.PuckSpeed)
	settings.HeartSpeed = engine.Fixed(cfg.Physics.HeartSpeed)
	settings.PaddleSpeed = engine.Fixed(cfg.Physics.PaddleSpeed)
	settings.ExtraPaddleSize = engine.V(cfg.Paddle.ExtraWidth, 1)
	settings.ExtraMaxHits = cfg.Paddle.ExtraMaxHits
	settings.MaxDepth = cfg.Strategies.MaxDepth

	g.env = &bricks.Env{
		Entities:  g.world.Entities,
		Counter:   bricks.NewCounter(0),
		Assets:    g.loader,
		RNG:       g.rng,
		Window:    engine.V(w, h),
		Lives:     g.lives,
		ExtraSlot: g.slot,
		Steering:  g.steering,
		Settings:  settings,
	}

	g.addBackground(w, h)
	g.addWalls(w, h)

	factory := bricks.NewFactory(g.env)
	g.board = bricks.BuildBoard(g.env, factory, bricks.Layout{
		Rows:        cfg.Grid.Rows,
		Cols:        cfg.Grid.Columns,
		Left:        1,
		Top:         brickTop,
		Width:       w - 2,
		BrickHeight: cfg.Grid.BrickHeight,
		Padding:     cfg.Grid.Padding,
		SampleSpace: cfg.Strategies.SampleSpace,
	})
	for _, b := range g.board.Bricks {
		b.Image.Color = rowColors[b.Coord().Row%len(rowColors)]
	}
	g.total = len(g.board.Bricks)

	paddleCenter := engine.Vec{X: engine.ToFixed(w).Div(2), Y: engine.ToFixed(h-2) + engine.Scale/2}
	g.paddle = objects.NewPaddle(paddleCenter, engine.V(cfg.Paddle.Width, 1), g.loader.LoadImage(assets.PaddleImage),
		g.steering, settings.PaddleSpeed, settings.MinX, settings.MaxX)
	g.world.Entities.Add(g.paddle, engine.LayerDefault)

	g.ballSpeed = engine.Fixed(g.difficulty.Speed(cfg.Physics.BallSpeed, 0, 0))
	g.ball = objects.NewBall(g.env.Window.Div(2), engine.V(1, 1), g.loader.LoadImage(assets.BallImage),
		g.loader.LoadSound(assets.BlopSound))
	g.ball.Launch(g.rng, g.ballSpeed)
	g.world.Entities.Add(g.ball, engine.LayerDefault)

	g.logger.Info("session started",
		"columns", cfg.Grid.Columns, "rows", cfg.Grid.Rows,
		"sample_space", cfg.Strategies.SampleSpace, "seed", runtime.Seed,
		"screen", fmt.Sprintf("%dx%d", w, h))
}

// addBackground fills the play field below the HUD. It never collides.
func (g *Game) addBackground(w, h int) {
	bg := engine.NewObject(engine.V(0, topWallRow), engine.V(w, h-topWallRow), g.loader.LoadImage(assets.BackgroundImage))
	g.world.Entities.Add(&bg, engine.LayerBackground)
}

// addWalls encloses the play field on the left, right and top.
func (g *Game) addWalls(w, h int) {
	img := g.loader.LoadImage(assets.WallImage)
	walls := []engine.Box{
		{Pos: engine.V(0, topWallRow), Size: engine.V(1, h-topWallRow)},
		{Pos: engine.V(w-1, topWallRow), Size: engine.V(1, h-topWallRow)},
		{Pos: engine.V(0, topWallRow), Size: engine.V(w, 1)},
	}
	for _, box := range walls {
		g.world.Entities.Add(objects.NewWall(box, img), engine.LayerStatic)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.over() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.steering.Set(in.Horizontal())
	g.world.Step()
	g.applyBallSpeed()
	if in.Has(core.ActionWin) {
		g.clearWall()
	}
	g.checkForGameEnd()

	return core.StepResult{State: g.State()}
}

// applyBallSpeed keeps the main ball at the speed the difficulty asks for.
func (g *Game) applyBallSpeed() {
	speed := engine.Fixed(g.difficulty.Speed(g.cfg.Physics.BallSpeed, g.Score(), g.tick))
	if speed == g.ballSpeed {
		return
	}
	g.ballSpeed = speed
	v := &g.ball.Vel
	v.X = withSign(speed, v.X)
	v.Y = withSign(speed, v.Y)
}

func withSign(mag, like engine.Fixed) engine.Fixed {
	if like < 0 {
		return -mag
	}
	return mag
}

// checkForGameEnd handles a lost ball and the win/lose transitions.
// A lost ball is settled first; the wall only counts as cleared on a tick
// where no ball was lost.
func (g *Game) checkForGameEnd() {
	if g.ball.Center().Y > g.env.Window.Y {
		left := g.lives.Lose()
		g.logger.Debug("life lost", "lives", left, "tick", g.tick)
		if left <= 0 {
			g.finish(StateLose)
			return
		}
		g.ball.SetCenter(g.env.Window.Div(2))
		g.ball.Launch(g.rng, g.ballSpeed)
		return
	}

	if g.env.Counter.Value() <= 0 {
		g.finish(StateWin)
	}
}

// clearWall drops the brick counter to zero, as if every brick had been destroyed.
func (g *Game) clearWall() {
	g.logger.Debug("wall cleared by key", "bricks", g.env.Counter.Value(), "tick", g.tick)
	g.env.Counter.Add(-g.env.Counter.Value())
}

func (g *Game) finish(state string) {
	g.state = state
	g.logger.Info("session ended", "outcome", state, "score", g.Score(), "ticks", g.tick, "lives", g.lives.Count())
}

func (g *Game) over() bool {
	return g.state == StateWin || g.state == StateLose
}

// Score is the number of bricks destroyed this session.
func (g *Game) Score() int {
	if g.env == nil {
		return 0
	}
	return g.total - g.env.Counter.Value()
}

// BricksLeft returns the shared brick counter.
func (g *Game) BricksLeft() int {
	return g.env.Counter.Value()
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives.Count()
}

// StateName returns the internal state string.
func (g *Game) StateName() string {
	return g.state
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.Score(),
		GameOver: g.over(),
		Paused:   g.state == StatePaused,
	}
	switch g.state {
	case StateWin:
		st.Outcome = core.OutcomeWin
	case StateLose:
		st.Outcome = core.OutcomeLose
	}
	return st
}

// SessionResult describes the finished session for persistence.
func (g *Game) SessionResult() storage.SessionResult {
	return storage.SessionResult{
		Mode:      g.mode.ID,
		Score:     g.Score(),
		Outcome:   string(g.State().Outcome),
		Columns:   g.cfg.Grid.Columns,
		Rows:      g.cfg.Grid.Rows,
		LivesLeft: g.lives.Count(),
		Ticks:     g.tick,
		Seed:      g.runtime.Seed,
	}
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	g.renderHUD(dst)
	for _, layer := range drawOrder {
		for _, e := range g.world.Entities.Entities(layer) {
			drawEntity(dst, e.Object())
		}
	}
	g.renderOverlay(dst)
}

var drawOrder = []engine.Layer{engine.LayerBackground, engine.LayerStatic, engine.LayerDefault, engine.LayerUI}

func drawEntity(dst *core.Screen, o *engine.Object) {
	r := o.Box.Cells()
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, o.Image.Glyph, o.Image.Color)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, hudRow, fmt.Sprintf("Bricks: %d/%d", g.BricksLeft(), g.total))

	count := g.lives.Count()
	hearts := strings.Repeat("♥", count) + strings.Repeat("·", g.lives.Max()-count)
	livesText := fmt.Sprintf("%s %d", hearts, count)
	x := (dst.Width() - len([]rune(livesText))) / 2
	dst.DrawTextColored(x, hudRow, livesText, g.lives.Color())

	title := g.mode.Title
	dst.DrawText(dst.Width()-len(title)-1, hudRow, title)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateWin:
		g.drawCenteredBox(dst, "You win! Play again?", "R: play again  |  Q: quit")
	case StateLose:
		g.drawCenteredBox(dst, "You lose! Play again?", "R: play again  |  Q: quit")
	}
}

func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

func init() {
	for _, m := range []Mode{ModeClassic, ModeChaos} {
		registry.Register(m.ID, m.Title, func(opts registry.Options) (registry.Game, error) {
			return New(m, opts)
		})
	}
}
