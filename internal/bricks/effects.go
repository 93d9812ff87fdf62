package bricks

import (
	"math"

	"github.com/MattiBlue123/Bricker-Game/internal/assets"
	"github.com/MattiBlue123/Bricker-Game/internal/engine"
	"github.com/MattiBlue123/Bricker-Game/internal/objects"
)

// Puck releases secondary balls from the brick.
type Puck struct {
	Basic
	image assets.Image
	sound assets.Sound
}

// NewPuck creates the puck strategy.
func NewPuck(env *Env) *Puck {
	return &Puck{
		Basic: NewBasic(env),
		image: env.Assets.LoadImage(assets.PuckImage),
		sound: env.Assets.LoadSound(assets.BlopSound),
	}
}

// OnCollision spawns the pucks at the brick center, each heading upward at
// its own random angle.
func (s *Puck) OnCollision(brick *Brick, other engine.Entity) {
	s.Basic.OnCollision(brick, other)

	set := s.env.Settings
	for range set.PuckCount {
		angle := s.env.RNG.Float64() * math.Pi
		vel := engine.Polar(set.PuckSpeed, angle)
		p := objects.NewPuck(brick.Center(), set.PuckSize, vel, s.image, s.sound, s.env.Entities, s.env.Window.Y)
		s.env.Entities.Add(p, engine.LayerDefault)
	}
}

// Kind implements Strategy.
func (*Puck) Kind() Kind { return KindPuck }

// ExtraPaddle gives the player a temporary second paddle.
type ExtraPaddle struct {
	Basic
	image assets.Image
}

// NewExtraPaddle creates the extra paddle strategy.
func NewExtraPaddle(env *Env) *ExtraPaddle {
	return &ExtraPaddle{
		Basic: NewBasic(env),
		image: env.Assets.LoadImage(assets.PaddleImage),
	}
}

// OnCollision adds a paddle in the middle of the window unless one is already active.
func (s *ExtraPaddle) OnCollision(brick *Brick, other engine.Entity) {
	s.Basic.OnCollision(brick, other)

	set := s.env.Settings
	objects.SpawnExtraPaddle(s.env.ExtraSlot, s.env.Entities, s.env.Window.Div(2),
		set.ExtraPaddleSize, s.image, s.env.Steering, set.PaddleSpeed, set.MinX, set.MaxX, set.ExtraMaxHits)
}

// Kind implements Strategy.
func (*ExtraPaddle) Kind() Kind { return KindExtraPaddle }

// RecoverLife drops a heart the main paddle can catch.
type RecoverLife struct {
	Basic
	image assets.Image
}

// NewRecoverLife creates the recover life strategy.
func NewRecoverLife(env *Env) *RecoverLife {
	return &RecoverLife{
		Basic: NewBasic(env),
		image: env.Assets.LoadImage(assets.HeartImage),
	}
}

// OnCollision drops a heart from the brick center.
func (s *RecoverLife) OnCollision(brick *Brick, other engine.Entity) {
	s.Basic.OnCollision(brick, other)

	set := s.env.Settings
	h := objects.NewFallingHeart(brick.Center(), set.HeartSize, set.HeartSpeed, s.image,
		s.env.Lives, s.env.Entities, s.env.Window.Y)
	s.env.Entities.Add(h, engine.LayerDefault)
}

// Kind implements Strategy.
func (*RecoverLife) Kind() Kind { return KindRecoverLife }
