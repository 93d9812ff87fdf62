// Package bricks decides what happens when a brick is hit.
//
// Every brick carries a Strategy chosen by a Factory when the board is laid
// out. Hitting a brick runs its strategy exactly once; strategies remove the
// brick, keep the shared Counter in step and add side effects (pucks, an
// extra paddle, a falling heart, chain explosions) to the session.
package bricks

import (
	"github.com/MattiBlue123/Bricker-Game/internal/assets"
	"github.com/MattiBlue123/Bricker-Game/internal/engine"
	"github.com/MattiBlue123/Bricker-Game/internal/objects"
)

// Coord is a cell of the brick grid.
type Coord struct {
	Row, Col int
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Brick is a grid-resident static entity.
type Brick struct {
	engine.Object
	coord     Coord
	destroyed bool
	strategy  Strategy
}

// NewBrick creates a brick at box occupying grid cell coord.
func NewBrick(box engine.Box, coord Coord, img assets.Image, s Strategy) *Brick {
	b := &Brick{
		Object:   engine.Object{Box: box, Image: img},
		coord:    coord,
		strategy: s,
	}
	b.SetTag(objects.TagBrick)
	return b
}

// Coord returns the brick's grid cell.
func (b *Brick) Coord() Coord {
	return b.coord
}

// Destroyed reports whether the brick has already been hit.
func (b *Brick) Destroyed() bool {
	return b.destroyed
}

// Strategy returns the brick's assigned strategy.
func (b *Brick) Strategy() Strategy {
	return b.strategy
}

// OnCollisionEnter runs the strategy the first time the brick is hit.
// Later hits, from the engine or from a chain reaction, are absorbed.
func (b *Brick) OnCollisionEnter(other engine.Entity, _ engine.Collision) {
	if b.destroyed {
		return
	}
	b.destroyed = true
	if b.strategy != nil {
		b.strategy.OnCollision(b, other)
	}
}
