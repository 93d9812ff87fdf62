// Package engine is the small game-object runtime the bricks run on:
// fixed-point geometry, layered entity collections and a frame step that
// integrates velocities and reports collisions.
package engine

import (
	"math"

	"github.com/MattiBlue123/Bricker-Game/internal/core"
)

// Scale is the fixed-point scale factor: 1 cell = 1000 units.
// Fixed-point keeps the simulation deterministic across platforms.
const Scale = 1000

// Fixed represents a fixed-point integer (scaled by Scale).
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// FromFloat converts a float value in cells to fixed-point, rounding to nearest.
func FromFloat(v float64) Fixed {
	return Fixed(math.Round(v * Scale))
}

// ToCell converts fixed-point to cell coordinate, rounding toward negative infinity.
func (f Fixed) ToCell() int {
	if f < 0 {
		return -int((-f + Scale - 1) / Scale)
	}
	return int(f) / Scale
}

// Mul multiplies fixed-point by an integer.
func (f Fixed) Mul(n int) Fixed {
	return Fixed(int(f) * n)
}

// Div divides fixed-point by an integer.
func (f Fixed) Div(n int) Fixed {
	if n == 0 {
		return 0
	}
	return Fixed(int(f) / n)
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Vec is a 2D fixed-point vector.
type Vec struct {
	X, Y Fixed
}

// V builds a vector from cell coordinates.
func V(x, y int) Vec {
	return Vec{X: ToFixed(x), Y: ToFixed(y)}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales both components by n.
func (v Vec) Mul(n int) Vec {
	return Vec{X: v.X.Mul(n), Y: v.Y.Mul(n)}
}

// Div divides both components by n.
func (v Vec) Div(n int) Vec {
	return Vec{X: v.X.Div(n), Y: v.Y.Div(n)}
}

// Polar returns a vector of the given length at angle rad, with y pointing down.
// An angle in [0, π) with a negated sine therefore points upward.
func Polar(length Fixed, rad float64) Vec {
	return Vec{
		X: FromFloat(float64(length) / Scale * math.Cos(rad)),
		Y: FromFloat(-float64(length) / Scale * math.Sin(rad)),
	}
}

// Box is an axis-aligned bounding box: top-left corner plus size.
type Box struct {
	Pos  Vec
	Size Vec
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() Fixed {
	return b.Pos.X + b.Size.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() Fixed {
	return b.Pos.Y + b.Size.Y
}

// Center returns the center point.
func (b Box) Center() Vec {
	return b.Pos.Add(b.Size.Div(2))
}

// Overlaps reports whether two boxes share interior area. Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	return b.Pos.X < o.Right() && o.Pos.X < b.Right() &&
		b.Pos.Y < o.Bottom() && o.Pos.Y < b.Bottom()
}

// Cells returns the screen cells covered by the box. Every non-empty box
// covers at least one cell.
func (b Box) Cells() core.Rect {
	x := b.Pos.X.ToCell()
	y := b.Pos.Y.ToCell()
	w := max(1, (b.Right()-1).ToCell()-x+1)
	h := max(1, (b.Bottom()-1).ToCell()-y+1)
	return core.NewRect(x, y, w, h)
}

// Normal is the unit direction from one colliding box toward the other,
// along the axis of least penetration.
type Normal struct {
	X, Y int
}

// ContactNormal computes the normal pointing from b toward o.
// The axis with the smaller overlap wins; ties prefer the vertical axis.
func (b Box) ContactNormal(o Box) Normal {
	overlapX := min(b.Right(), o.Right()) - max(b.Pos.X, o.Pos.X)
	overlapY := min(b.Bottom(), o.Bottom()) - max(b.Pos.Y, o.Pos.Y)
	bc, oc := b.Center(), o.Center()

	if overlapX < overlapY {
		if oc.X < bc.X {
			return Normal{X: -1}
		}
		return Normal{X: 1}
	}
	if oc.Y < bc.Y {
		return Normal{Y: -1}
	}
	return Normal{Y: 1}
}

// Flip returns the opposite normal.
func (n Normal) Flip() Normal {
	return Normal{X: -n.X, Y: -n.Y}
}
