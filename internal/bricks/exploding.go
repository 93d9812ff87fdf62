package bricks

import (
	"github.com/MattiBlue123/Bricker-Game/internal/assets"
	"github.com/MattiBlue123/Bricker-Game/internal/engine"
)

// Visit order of the neighbors: up, down, left, right.
var neighbors = [4]Coord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// Exploding destroys the orthogonal neighbors of its brick, which may in
// turn explode theirs.
type Exploding struct {
	Basic
	sound assets.Sound
}

// NewExploding creates the exploding strategy.
func NewExploding(env *Env) *Exploding {
	return &Exploding{
		Basic: NewBasic(env),
		sound: env.Assets.LoadSound(assets.ExplosionSound),
	}
}

// OnCollision hits every live neighbor through its normal collision entry
// point. Each grid cell explodes at most once, which ends the chain.
func (s *Exploding) OnCollision(brick *Brick, other engine.Entity) {
	s.Basic.OnCollision(brick, other)
	s.sound.Play()

	grid := s.env.Grid
	if !grid.Claim(brick.Coord()) {
		return
	}
	for _, d := range neighbors {
		if n := grid.Live(brick.Coord().Add(d)); n != nil {
			n.OnCollisionEnter(brick, engine.Collision{})
		}
	}
}

// Kind implements Strategy.
func (*Exploding) Kind() Kind { return KindExploding }
