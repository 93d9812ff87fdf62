package objects

import (
	"github.com/MattiBlue123/Bricker-Game/internal/assets"
	"github.com/MattiBlue123/Bricker-Game/internal/engine"
)

// FallingHeart drops from a destroyed brick and grants a life when caught
// by the main paddle.
type FallingHeart struct {
	engine.Object
	lives    *Lives
	entities *engine.Collection
	windowH  engine.Fixed
}

// NewFallingHeart creates a heart centered on center falling at speed.
func NewFallingHeart(center, size engine.Vec, speed engine.Fixed, img assets.Image,
	lives *Lives, entities *engine.Collection, windowH engine.Fixed) *FallingHeart {
	h := &FallingHeart{
		Object:   engine.Object{Box: engine.Box{Size: size}, Vel: engine.Vec{Y: speed}, Image: img},
		lives:    lives,
		entities: entities,
		windowH:  windowH,
	}
	h.SetCenter(center)
	h.SetTag(TagHeart)
	return h
}

// ShouldCollideWith accepts only the main paddle.
func (h *FallingHeart) ShouldCollideWith(other engine.Entity) bool {
	return other.Object().Tag() == TagMainPaddle
}

// OnCollisionEnter grants a life and removes the heart.
func (h *FallingHeart) OnCollisionEnter(other engine.Entity, _ engine.Collision) {
	if other.Object().Tag() != TagMainPaddle {
		return
	}
	if h.entities.Remove(h, engine.LayerDefault) {
		h.lives.Gain()
	}
}

// Update removes the heart once it has left the window.
func (h *FallingHeart) Update() {
	if h.Box.Pos.Y > h.windowH {
		h.entities.Remove(h, engine.LayerDefault)
	}
}
