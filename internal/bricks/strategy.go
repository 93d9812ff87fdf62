package bricks

import (
	"github.com/MattiBlue123/Bricker-Game/internal/assets"
	"github.com/MattiBlue123/Bricker-Game/internal/core"
	"github.com/MattiBlue123/Bricker-Game/internal/engine"
	"github.com/MattiBlue123/Bricker-Game/internal/objects"
)

// Kind identifies a strategy variant.
type Kind int

const (
	KindBasic Kind = iota
	KindPuck
	KindExtraPaddle
	KindExploding
	KindRecoverLife
	KindComposite
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindPuck:
		return "puck"
	case KindExtraPaddle:
		return "extra_paddle"
	case KindExploding:
		return "exploding"
	case KindRecoverLife:
		return "recover_life"
	case KindComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// Strategy is the behavior a brick runs when it is hit.
// OnCollision may be called again for an already removed brick; the brick
// count and the grid stay consistent when that happens.
type Strategy interface {
	OnCollision(brick *Brick, other engine.Entity)
	Kind() Kind
}

// Settings are the tunables the side effects use.
type Settings struct {
	PuckCount       int
	PuckSize        engine.Vec
	PuckSpeed       engine.Fixed
	HeartSize       engine.Vec
	HeartSpeed      engine.Fixed
	ExtraPaddleSize engine.Vec
	PaddleSpeed     engine.Fixed
	ExtraMaxHits    int
	MaxDepth        int
	// Horizontal bounds for paddles.
	MinX, MaxX engine.Fixed
}

// DefaultSettings returns settings for a window of the given size, in cells.
func DefaultSettings(w, h int) Settings {
	return Settings{
		PuckCount:       2,
		PuckSize:        engine.Vec{X: 750, Y: 750},
		PuckSpeed:       300,
		HeartSize:       engine.V(1, 1),
		HeartSpeed:      150,
		ExtraPaddleSize: engine.V(8, 1),
		PaddleSpeed:     1000,
		ExtraMaxHits:    4,
		MaxDepth:        2,
		MinX:            engine.ToFixed(1),
		MaxX:            engine.ToFixed(w - 1),
	}
}

// Env is the session state strategies act on. Every field is owned by the
// session and shared by all strategies of that session.
type Env struct {
	Entities *engine.Collection
	Counter  *Counter
	Grid     *Grid
	Assets   assets.Loader
	RNG      *core.SimpleRNG
	// Window size in fixed-point.
	Window    engine.Vec
	Lives     *objects.Lives
	ExtraSlot *objects.ExtraPaddleSlot
	Steering  *objects.Steering
	Settings  Settings
}

// Basic removes the brick and counts it. Every other strategy runs it first.
type Basic struct {
	env *Env
}

// NewBasic creates the basic strategy.
func NewBasic(env *Env) Basic {
	return Basic{env: env}
}

// OnCollision removes the brick from the static layer. The counter only
// moves when the removal actually took something out.
func (s Basic) OnCollision(brick *Brick, _ engine.Entity) {
	if s.env.Entities.Remove(brick, engine.LayerStatic) {
		s.env.Counter.Decrement()
	}
}

// Kind implements Strategy.
func (Basic) Kind() Kind { return KindBasic }
