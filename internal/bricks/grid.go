package bricks

// Counter tracks how many bricks are left. The session is won when it reaches zero.
type Counter struct {
	n int
}

// NewCounter creates a counter starting at n.
func NewCounter(n int) *Counter {
	return &Counter{n: n}
}

// Value returns the remaining count.
func (c *Counter) Value() int {
	return c.n
}

// Add adjusts the counter by delta.
func (c *Counter) Add(delta int) {
	c.n += delta
}

// Decrement removes one brick from the count.
func (c *Counter) Decrement() {
	c.n--
}

type cell struct {
	brick    *Brick
	occupied bool
	exploded bool
}

// Grid maps (row, column) to the brick placed there. A cell is occupied once
// a brick is placed and exploded once a chain reaction has passed through it.
type Grid struct {
	rows, cols int
	cells      []cell
}

// NewGrid creates an empty rows x cols grid.
func NewGrid(rows, cols int) *Grid {
	rows, cols = max(0, rows), max(0, cols)
	return &Grid{rows: rows, cols: cols, cells: make([]cell, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c is inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

func (g *Grid) at(c Coord) *cell {
	if !g.InBounds(c) {
		return nil
	}
	return &g.cells[c.Row*g.cols+c.Col]
}

// Place puts a brick into its cell.
func (g *Grid) Place(b *Brick) {
	if cl := g.at(b.Coord()); cl != nil {
		cl.brick = b
		cl.occupied = true
	}
}

// At returns the brick placed at c, or nil.
func (g *Grid) At(c Coord) *Brick {
	if cl := g.at(c); cl != nil {
		return cl.brick
	}
	return nil
}

// Occupied reports whether a brick was ever placed at c.
func (g *Grid) Occupied(c Coord) bool {
	cl := g.at(c)
	return cl != nil && cl.occupied
}

// Exploded reports whether a chain reaction has processed c.
func (g *Grid) Exploded(c Coord) bool {
	cl := g.at(c)
	return cl != nil && cl.exploded
}

// Empty reports whether c can take part in a chain reaction:
// out of bounds, never occupied or already exploded.
func (g *Grid) Empty(c Coord) bool {
	cl := g.at(c)
	return cl == nil || !cl.occupied || cl.exploded
}

// Claim marks c exploded. It returns false, changing nothing, if c was empty.
func (g *Grid) Claim(c Coord) bool {
	if g.Empty(c) {
		return false
	}
	g.at(c).exploded = true
	return true
}

// Live returns the brick at c if the cell is not empty.
func (g *Grid) Live(c Coord) *Brick {
	if g.Empty(c) {
		return nil
	}
	return g.at(c).brick
}
