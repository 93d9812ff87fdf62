package objects

import (
	"github.com/MattiBlue123/Bricker-Game/internal/assets"
	"github.com/MattiBlue123/Bricker-Game/internal/core"
	"github.com/MattiBlue123/Bricker-Game/internal/engine"
)

// Steering is the horizontal direction the player is pushing this frame.
// All paddles of a session read the same Steering.
type Steering struct {
	dir int
}

// Set stores a direction: -1 left, 0 none, +1 right.
func (s *Steering) Set(dir int) {
	s.dir = core.Clamp(dir, -1, 1)
}

// Dir returns the current direction.
func (s *Steering) Dir() int {
	return s.dir
}

// Paddle is moved by the player and kept between minX and maxX.
type Paddle struct {
	engine.Object
	steer      *Steering
	speed      engine.Fixed
	minX, maxX engine.Fixed
}

// NewPaddle creates a paddle centered on center.
func NewPaddle(center, size engine.Vec, img assets.Image, steer *Steering,
	speed, minX, maxX engine.Fixed) *Paddle {
	p := &Paddle{
		Object: engine.Object{Box: engine.Box{Size: size}, Image: img},
		steer:  steer,
		speed:  speed,
		minX:   minX,
		maxX:   maxX,
	}
	p.SetCenter(center)
	p.SetTag(TagMainPaddle)
	return p
}

// Update turns the steering into a velocity that never crosses the bounds.
func (p *Paddle) Update() {
	x := p.Box.Pos.X + p.speed.Mul(p.steer.Dir())
	x = core.Clamp(x, p.minX, max(p.minX, p.maxX-p.Box.Size.X))
	p.Vel = engine.Vec{X: x - p.Box.Pos.X}
}

// ShouldCollideWith limits paddles to balls and hearts; bricks and walls pass through.
func (p *Paddle) ShouldCollideWith(other engine.Entity) bool {
	switch other.Object().Tag() {
	case TagBall, TagHeart:
		return true
	}
	return false
}
