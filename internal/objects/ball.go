package objects

import (
	"github.com/MattiBlue123/Bricker-Game/internal/assets"
	"github.com/MattiBlue123/Bricker-Game/internal/core"
	"github.com/MattiBlue123/Bricker-Game/internal/engine"
)

// Ball bounces off everything it touches and plays a sound on each hit.
type Ball struct {
	engine.Object
	sound assets.Sound
	hits  int
}

// NewBall creates a ball centered on center.
func NewBall(center, size engine.Vec, img assets.Image, sound assets.Sound) *Ball {
	b := &Ball{Object: engine.Object{Box: engine.Box{Size: size}, Image: img}, sound: sound}
	b.SetCenter(center)
	b.SetTag(TagBall)
	return b
}

// Launch sets a diagonal velocity with random horizontal and vertical signs.
func (b *Ball) Launch(rng *core.SimpleRNG, speed engine.Fixed) {
	vx, vy := speed, speed
	if rng.Bool() {
		vx = -vx
	}
	if rng.Bool() {
		vy = -vy
	}
	b.Vel = engine.Vec{X: vx, Y: vy}
}

// Hits returns the number of collisions the ball has had.
func (b *Ball) Hits() int {
	return b.hits
}

// OnCollisionEnter reflects the velocity component that points into the contact.
func (b *Ball) OnCollisionEnter(other engine.Entity, c engine.Collision) {
	if c.Normal.X != 0 && sign(b.Vel.X) == c.Normal.X {
		b.Vel.X = -b.Vel.X
	}
	if c.Normal.Y != 0 && sign(b.Vel.Y) == c.Normal.Y {
		b.Vel.Y = -b.Vel.Y
	}
	b.hits++
	if b.sound != nil {
		b.sound.Play()
	}
}

// ShouldCollideWith keeps balls from bouncing off each other.
func (b *Ball) ShouldCollideWith(other engine.Entity) bool {
	return other.Object().Tag() != TagBall
}
