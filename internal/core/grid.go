package core

// Grid stores a 2D field of binary cells (0 dead, 1 alive) in row-major order.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a fully dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Clamp pins the coordinates to the nearest in-range cell.
func (g *Grid) Clamp(x, y int) (int, int) {
	x = max(0, min(x, g.W-1))
	y = max(0, min(y, g.H-1))
	return x, y
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get reports whether the cell at (x, y) is alive. Coordinates outside the
// grid read the nearest edge cell.
func (g *Grid) Get(x, y int) bool {
	x, y = g.Clamp(x, y)
	return g.data[y*g.W+x] != 0
}

// Set updates the cell at (x, y). Writes outside the grid are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.data[y*g.W+x] = v
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Population counts the live cells.
func (g *Grid) Population() (count int) {
	for _, c := range g.data {
		if c != 0 {
			count++
		}
	}
	return
}

// Equal reports whether both grids have the same dimensions and contents.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.W != o.W || g.H != o.H {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}
