package core

import "fmt"

// Grid stores Conway cell states for a fixed-size board in row-major order.
// Two buffers back the grid so a generation advance always reads the
// previous generation in full before any cell of the next one is written.
type Grid struct {
	w, h int
	cur  []bool
	nxt  []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", w, h)
	}
	cells := make([]bool, w*h)
	return &Grid{w: w, h: h, cur: cells, nxt: make([]bool, len(cells))}, nil
}

// Width returns the number of cell columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of cell rows.
func (g *Grid) Height() int { return g.h }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get reports whether the cell at (x, y) is alive. Out-of-range
// coordinates read as dead, which keeps neighbor counting at the edges
// branch-free for callers.
func (g *Grid) Get(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cur[y*g.w+x]
}

// Set assigns the cell at (x, y). Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.inBounds(x, y) {
		return
	}
	g.cur[y*g.w+x] = alive
}

// Toggle flips the cell at (x, y). Out-of-range coordinates are ignored.
func (g *Grid) Toggle(x, y int) {
	if !g.inBounds(x, y) {
		return
	}
	g.cur[y*g.w+x] = !g.cur[y*g.w+x]
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = false
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cur {
		if alive {
			n++
		}
	}
	return n
}

// LiveNeighbors counts live cells in the Moore neighborhood of (x, y).
// The grid is closed, not toroidal: neighbors past an edge count as dead.
func (g *Grid) LiveNeighbors(x, y int) int {
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy) {
				neighbors++
			}
		}
	}
	return neighbors
}

// Advance replaces the grid with the next generation under Conway's rule:
// a live cell survives with 2 or 3 live neighbors, a dead cell is born
// with exactly 3, and everything else dies. Neighbor counts are taken
// entirely from the pre-advance buffer.
func (g *Grid) Advance() {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			neighbors := g.LiveNeighbors(x, y)
			idx := y*g.w + x
			if g.cur[idx] {
				g.nxt[idx] = neighbors == 2 || neighbors == 3
			} else {
				g.nxt[idx] = neighbors == 3
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}
