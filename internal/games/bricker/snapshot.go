package bricker

import (
	"github.com/MattiBlue123/Bricker-Game/internal/bricks"
	"github.com/MattiBlue123/Bricker-Game/internal/engine"
)

// Snapshot is a flat view of a session for determinism checks and debugging.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       int
	Score      int
	Lives      int
	BricksLeft int
	State      string
	ExtraSlot  bool

	// Moving entities on the default layer, 4 ints each: X, Y, VX, VY
	MoverCount int
	MoverData  []int

	// Grid cells, row*cols + col: bit 0 occupied, bit 1 exploded, bit 2 destroyed
	CellData []int

	RNGState uint64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	movers := g.world.Entities.Entities(engine.LayerDefault)
	moverData := make([]int, 0, len(movers)*4)
	for _, e := range movers {
		o := e.Object()
		moverData = append(moverData, int(o.Box.Pos.X), int(o.Box.Pos.Y), int(o.Vel.X), int(o.Vel.Y))
	}

	grid := g.board.Grid
	cellData := make([]int, 0, grid.Rows()*grid.Cols())
	for row := range grid.Rows() {
		for col := range grid.Cols() {
			c := bricks.Coord{Row: row, Col: col}
			v := 0
			if grid.Occupied(c) {
				v |= 1
			}
			if grid.Exploded(c) {
				v |= 2
			}
			if b := grid.At(c); b != nil && b.Destroyed() {
				v |= 4
			}
			cellData = append(cellData, v)
		}
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      g.Score(),
		Lives:      g.lives.Count(),
		BricksLeft: g.env.Counter.Value(),
		State:      g.state,
		ExtraSlot:  g.slot.Active(),
		MoverCount: len(movers),
		MoverData:  moverData,
		CellData:   cellData,
		RNGState:   g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksLeft) //#nosec G115 -- hash computation
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	if snap.ExtraSlot {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.MoverCount) //#nosec G115 -- hash computation
	for _, v := range snap.MoverData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.CellData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = h*31 + snap.RNGState
	return h
}
