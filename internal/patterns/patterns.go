// Package patterns holds the named seed patterns and applies them to a grid.
package patterns

import (
	"errors"
	"fmt"
	"sort"

	"lifegrid/internal/core"
)

// ErrNotFound reports a pattern name missing from the registry.
var ErrNotFound = errors.New("pattern not found")

// ErrDoesNotFit reports a pattern extending past the grid edge at the
// requested position.
var ErrDoesNotFit = errors.New("pattern does not fit at requested position")

// Pattern is a static mask of live cells.
type Pattern struct {
	Name        string
	Description string
	Cells       [][]bool
	W, H        int
}

var registry = map[string]Pattern{}

// Register adds a pattern under its name. Later registrations replace
// earlier ones.
func Register(p Pattern) {
	if p.Name == "" {
		return
	}
	registry[p.Name] = p
}

// Lookup returns the named pattern.
func Lookup(name string) (Pattern, error) {
	p, ok := registry[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p, nil
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyAt places the named pattern with its top-left corner at (x, y).
// Only the pattern's live cells are written; existing live cells outside
// the mask are left alone.
func ApplyAt(g *core.Grid, name string, x, y int) error {
	p, err := Lookup(name)
	if err != nil {
		return err
	}
	if x < 0 || y < 0 || x+p.W > g.Width() || y+p.H > g.Height() {
		return fmt.Errorf("%w: %q at (%d,%d) on %dx%d grid", ErrDoesNotFit, name, x, y, g.Width(), g.Height())
	}
	place(g, p, x, y)
	return nil
}

// ApplyCentered clears the grid and places the named pattern centered.
func ApplyCentered(g *core.Grid, name string) error {
	p, err := Lookup(name)
	if err != nil {
		return err
	}
	if p.W > g.Width() || p.H > g.Height() {
		return fmt.Errorf("%w: %q on %dx%d grid", ErrDoesNotFit, name, g.Width(), g.Height())
	}
	g.Clear()
	place(g, p, (g.Width()-p.W)/2, (g.Height()-p.H)/2)
	return nil
}

// ApplyRandom clears the grid and sets each cell live with the given
// probability.
func ApplyRandom(g *core.Grid, rng *core.RNG, density float64) {
	g.Clear()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if rng.Float64() < density {
				g.Set(x, y, true)
			}
		}
	}
}

// Clear kills every cell on the grid.
func Clear(g *core.Grid) {
	g.Clear()
}

func place(g *core.Grid, p Pattern, x, y int) {
	for py := 0; py < p.H; py++ {
		for px := 0; px < p.W; px++ {
			if p.Cells[py][px] {
				g.Set(x+px, y+py, true)
			}
		}
	}
}

// fromRows builds a pattern mask from string rows where '#' marks a live
// cell.
func fromRows(name, description string, rows []string) Pattern {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	cells := make([][]bool, h)
	for y, row := range rows {
		cells[y] = make([]bool, w)
		for x := 0; x < w && x < len(row); x++ {
			cells[y][x] = row[x] == '#'
		}
	}
	return Pattern{Name: name, Description: description, Cells: cells, W: w, H: h}
}

// testPattern marks the grid corners, a center cross, and border ticks
// every 5 cells. Seeding it after a resize makes coordinate-mapping bugs
// visible at a glance.
func testPattern() Pattern {
	const size = 20
	cells := make([][]bool, size)
	for y := range cells {
		cells[y] = make([]bool, size)
	}

	cells[0][0] = true
	cells[0][size-1] = true
	cells[size-1][0] = true
	cells[size-1][size-1] = true

	center := size / 2
	for i := -2; i <= 2; i++ {
		cells[center][center+i] = true
		cells[center+i][center] = true
	}

	for x := 0; x < size; x += 5 {
		cells[0][x] = true
		cells[size-1][x] = true
	}
	for y := 0; y < size; y += 5 {
		cells[y][0] = true
		cells[y][size-1] = true
	}

	return Pattern{
		Name:        "test",
		Description: "Coordinate-mapping verification pattern",
		Cells:       cells,
		W:           size,
		H:           size,
	}
}

func init() {
	Register(fromRows("glider", "Classic glider that moves diagonally", []string{
		".#.",
		"..#",
		"###",
	}))
	Register(fromRows("blinker", "Period-2 oscillating line", []string{
		"###",
	}))
	Register(fromRows("beacon", "Period-2 oscillating beacon", []string{
		"##..",
		"##..",
		"..##",
		"..##",
	}))
	Register(fromRows("toad", "Period-2 oscillating toad", []string{
		".###",
		"###.",
	}))
	Register(testPattern())
}
