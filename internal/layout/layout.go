// Package layout maps between window pixel space and grid cell space. The
// grid keeps square cells and constant margins at any window size; a header
// band above the grid is reserved for the control bar.
package layout

import "math"

const (
	// Margin is the constant offset from the window edges.
	Margin = 60.0
	// HeaderHeight is the band reserved above the grid for controls.
	HeaderHeight = 40.0
	// HeaderSpacing separates the header band from the grid.
	HeaderSpacing = 10.0

	// minAvailable stops the available area from collapsing (or going
	// negative) when the window shrinks below the margins.
	minAvailable = 100.0
	// minCellSize keeps cells visible in pathological windows.
	minCellSize = 1.0

	// cellInset is the fraction of the cell size trimmed from each side
	// of a drawn live cell so adjacent cells stay visually separate.
	cellInset = 0.1
)

// Metrics is the derived pixel geometry for one window size. It is cheap
// to compute and holds no state, so callers recompute it every frame
// rather than caching it across resizes.
type Metrics struct {
	CellSize float64
	OriginX  float64
	OriginY  float64
	GridW    int
	GridH    int
}

// Compute derives the grid geometry for a window of winW x winH pixels
// holding a gridW x gridH cell grid. Cells are square, sized to the
// tighter axis, and the grid is centered within the band below the header
// without encroaching on the margins.
func Compute(winW, winH float64, gridW, gridH int) Metrics {
	availW := math.Max(winW-2*Margin, minAvailable)
	availH := math.Max(winH-2*Margin-HeaderHeight-HeaderSpacing, minAvailable)

	cell := math.Min(availW/float64(gridW), availH/float64(gridH))
	cell = math.Max(minCellSize, cell)

	gridPxW := cell * float64(gridW)
	gridPxH := cell * float64(gridH)

	originX := math.Max(Margin, Margin+(availW-gridPxW)/2)
	gridTop := Margin + HeaderHeight + HeaderSpacing
	originY := math.Max(gridTop, gridTop+(availH-gridPxH)/2)

	return Metrics{
		CellSize: cell,
		OriginX:  originX,
		OriginY:  originY,
		GridW:    gridW,
		GridH:    gridH,
	}
}

// GridToScreen returns the top-left pixel of cell (x, y).
func (m Metrics) GridToScreen(x, y int) (float64, float64) {
	return m.OriginX + float64(x)*m.CellSize, m.OriginY + float64(y)*m.CellSize
}

// boundaryEps absorbs the float rounding in OriginX + x*CellSize when the
// cell size is a non-terminating fraction, so a cell's top-left pixel
// always resolves to that cell rather than flooring one index low.
const boundaryEps = 1e-9

// ScreenToGrid resolves a pixel position to cell coordinates. ok is false
// when the position falls outside the grid rectangle.
func (m Metrics) ScreenToGrid(px, py float64) (int, int, bool) {
	x := int(math.Floor((px-m.OriginX)/m.CellSize + boundaryEps))
	y := int(math.Floor((py-m.OriginY)/m.CellSize + boundaryEps))
	if x < 0 || y < 0 || x >= m.GridW || y >= m.GridH {
		return 0, 0, false
	}
	return x, y, true
}

// CellRect returns the drawn rectangle for a live cell at (x, y), inset by
// 10% of the cell size on each side.
func (m Metrics) CellRect(x, y int) (rx, ry, rw, rh float64) {
	sx, sy := m.GridToScreen(x, y)
	inset := m.CellSize * cellInset
	return sx + inset, sy + inset, m.CellSize - 2*inset, m.CellSize - 2*inset
}

// GridRect returns the full grid rectangle in pixels.
func (m Metrics) GridRect() (rx, ry, rw, rh float64) {
	return m.OriginX, m.OriginY, m.CellSize * float64(m.GridW), m.CellSize * float64(m.GridH)
}
