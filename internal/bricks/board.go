package bricks

import (
	"github.com/MattiBlue123/Bricker-Game/internal/assets"
	"github.com/MattiBlue123/Bricker-Game/internal/engine"
)

// Layout places a rows x cols wall of bricks inside a horizontal band.
// Rows are stacked without vertical gaps.
type Layout struct {
	Rows, Cols  int
	Left, Top   int // top-left corner of the band, in cells
	Width       int // band width in cells
	BrickHeight int
	Padding     int // gap between bricks, in cells
	SampleSpace int
}

// BrickWidth returns the width of one brick and the gap actually used.
// The gap shrinks to zero when the band is too narrow for it.
func (l Layout) BrickWidth() (width, gap int) {
	cols := max(1, l.Cols)
	gap = max(0, l.Padding)
	width = (l.Width - (cols-1)*gap) / cols
	if width < 1 {
		gap = 0
		width = max(1, l.Width/cols)
	}
	return width, gap
}

// Board is the wall of bricks of one session.
type Board struct {
	Grid   *Grid
	Bricks []*Brick
}

// BuildBoard creates one brick per grid cell, assigns each a strategy from
// the factory, adds it to the static layer and sets the counter.
func BuildBoard(env *Env, f *Factory, l Layout) *Board {
	grid := NewGrid(l.Rows, l.Cols)
	env.Grid = grid

	width, gap := l.BrickWidth()
	height := max(1, l.BrickHeight)
	// Center the wall in the band.
	used := grid.Cols()*width + max(0, grid.Cols()-1)*gap
	left := l.Left + max(0, (l.Width-used)/2)

	img := env.Assets.LoadImage(assets.BrickImage)
	board := &Board{Grid: grid, Bricks: make([]*Brick, 0, grid.Rows()*grid.Cols())}
	for row := range grid.Rows() {
		for col := range grid.Cols() {
			box := engine.Box{
				Pos:  engine.V(left+col*(width+gap), l.Top+row*height),
				Size: engine.V(width, height),
			}
			b := NewBrick(box, Coord{Row: row, Col: col}, img, f.Get(l.SampleSpace))
			grid.Place(b)
			env.Entities.Add(b, engine.LayerStatic)
			board.Bricks = append(board.Bricks, b)
		}
	}
	env.Counter.Add(len(board.Bricks))
	return board
}
