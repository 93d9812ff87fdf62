package objects

import (
	"github.com/MattiBlue123/Bricker-Game/internal/assets"
	"github.com/MattiBlue123/Bricker-Game/internal/engine"
)

// Puck is a secondary ball spawned by a brick. It leaves the game on its
// own once it has fallen out of the window.
type Puck struct {
	Ball
	entities *engine.Collection
	windowH  engine.Fixed
}

// NewPuck creates a puck centered on center moving with velocity vel.
func NewPuck(center, size, vel engine.Vec, img assets.Image, sound assets.Sound,
	entities *engine.Collection, windowH engine.Fixed) *Puck {
	p := &Puck{
		Ball:     *NewBall(center, size, img, sound),
		entities: entities,
		windowH:  windowH,
	}
	p.Vel = vel
	return p
}

// Update removes the puck once its center is more than its own height below the window.
func (p *Puck) Update() {
	if p.Center().Y > p.windowH+p.Box.Size.Y {
		p.entities.Remove(p, engine.LayerDefault)
	}
}
