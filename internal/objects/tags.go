// Package objects holds the moving pieces of a Bricker session:
// balls, pucks, paddles, falling hearts and the lives counter.
package objects

import (
	"github.com/MattiBlue123/Bricker-Game/internal/assets"
	"github.com/MattiBlue123/Bricker-Game/internal/engine"
)

// Entity tags. Every ball-like object (main ball and pucks) shares TagBall.
const (
	TagBall        = "ball"
	TagMainPaddle  = "MAIN_PADDLE"
	TagExtraPaddle = "EXTRA_PADDLE"
	TagWall        = "wall"
	TagBrick       = "brick"
	TagHeart       = "heart"
)

// NewWall creates a static wall segment.
func NewWall(box engine.Box, img assets.Image) *engine.Object {
	w := &engine.Object{Box: box, Image: img}
	w.SetTag(TagWall)
	return w
}

func sign(f engine.Fixed) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}
