package objects

import (
	"github.com/MattiBlue123/Bricker-Game/internal/assets"
	"github.com/MattiBlue123/Bricker-Game/internal/engine"
)

// ExtraPaddleSlot tracks the single extra paddle a session may have.
type ExtraPaddleSlot struct {
	current *ExtraPaddle
}

// Active reports whether an extra paddle is in play.
func (s *ExtraPaddleSlot) Active() bool {
	return s.current != nil
}

// Current returns the active extra paddle, or nil.
func (s *ExtraPaddleSlot) Current() *ExtraPaddle {
	return s.current
}

// Reset frees the slot without touching any collection.
func (s *ExtraPaddleSlot) Reset() {
	s.current = nil
}

// ExtraPaddle is a second paddle that disappears after a fixed number of ball hits.
type ExtraPaddle struct {
	Paddle
	slot     *ExtraPaddleSlot
	entities *engine.Collection
	maxHits  int
	hits     int
}

// SpawnExtraPaddle adds an extra paddle at center unless one is already active.
// It returns nil when the slot is taken.
func SpawnExtraPaddle(slot *ExtraPaddleSlot, entities *engine.Collection, center, size engine.Vec,
	img assets.Image, steer *Steering, speed, minX, maxX engine.Fixed, maxHits int) *ExtraPaddle {
	if slot.Active() {
		return nil
	}
	p := &ExtraPaddle{
		Paddle:   *NewPaddle(center, size, img, steer, speed, minX, maxX),
		slot:     slot,
		entities: entities,
		maxHits:  maxHits,
	}
	p.SetTag(TagExtraPaddle)
	slot.current = p
	entities.Add(p, engine.LayerDefault)
	return p
}

// Hits returns the number of ball hits taken so far.
func (p *ExtraPaddle) Hits() int {
	return p.hits
}

// OnCollisionEnter counts ball hits and expires the paddle at the limit.
func (p *ExtraPaddle) OnCollisionEnter(other engine.Entity, _ engine.Collision) {
	if other.Object().Tag() != TagBall {
		return
	}
	p.hits++
	if p.hits < p.maxHits {
		return
	}
	p.entities.Remove(p, engine.LayerDefault)
	if p.slot.current == p {
		p.slot.current = nil
	}
}
