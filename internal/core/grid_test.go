package core

import "testing"

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {5, -1}, {0, 0}} {
		if _, err := NewGrid(dims[0], dims[1]); err == nil {
			t.Errorf("NewGrid(%d, %d) expected error", dims[0], dims[1])
		}
	}
	g, err := NewGrid(3, 2)
	if err != nil {
		t.Fatalf("NewGrid(3, 2) unexpected error: %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("got %dx%d, expected 3x2", g.Width(), g.Height())
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	g, _ := NewGrid(8, 8)
	g.Advance()
	if pop := g.Population(); pop != 0 {
		t.Fatalf("all-dead grid produced %d live cells after advance", pop)
	}
}

func TestLoneCellDies(t *testing.T) {
	g, _ := NewGrid(5, 5)
	g.Set(2, 2, true)
	g.Advance()
	if g.Get(2, 2) {
		t.Fatal("isolated cell survived an advance")
	}
	if pop := g.Population(); pop != 0 {
		t.Fatalf("expected empty grid, got population %d", pop)
	}
}

func TestBlockIsStable(t *testing.T) {
	g, _ := NewGrid(6, 6)
	block := [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}}
	for _, c := range block {
		g.Set(c[0], c[1], true)
	}
	for i := 0; i < 3; i++ {
		g.Advance()
	}
	if pop := g.Population(); pop != 4 {
		t.Fatalf("block population changed to %d", pop)
	}
	for _, c := range block {
		if !g.Get(c[0], c[1]) {
			t.Fatalf("block cell (%d,%d) died", c[0], c[1])
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g, _ := NewGrid(5, 5)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)

	g.Advance()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := g.Get(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	g.Advance()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := g.Get(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second advance cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

// gliderAt returns the classic glider's live cells with top-left at (ox, oy).
func gliderAt(ox, oy int) [][2]int {
	return [][2]int{
		{ox + 1, oy},
		{ox + 2, oy + 1},
		{ox, oy + 2}, {ox + 1, oy + 2}, {ox + 2, oy + 2},
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	g, _ := NewGrid(12, 12)
	for _, c := range gliderAt(2, 2) {
		g.Set(c[0], c[1], true)
	}

	for i := 0; i < 4; i++ {
		g.Advance()
	}

	want := map[[2]int]bool{}
	for _, c := range gliderAt(3, 3) {
		want[c] = true
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			alive := g.Get(x, y)
			if want[[2]int{x, y}] != alive {
				t.Fatalf("after 4 advances cell (%d,%d) alive=%v, expected %v", x, y, alive, want[[2]int{x, y}])
			}
		}
	}
}

func TestToggleTwiceIsIdentity(t *testing.T) {
	g, _ := NewGrid(4, 4)
	g.Set(1, 1, true)

	g.Toggle(1, 1)
	g.Toggle(1, 1)
	if !g.Get(1, 1) {
		t.Fatal("double toggle changed a live cell")
	}

	g.Toggle(2, 2)
	g.Toggle(2, 2)
	if g.Get(2, 2) {
		t.Fatal("double toggle changed a dead cell")
	}
}

func TestOutOfRangeOperationsAreSafe(t *testing.T) {
	g, _ := NewGrid(3, 3)
	coords := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-5, -5}, {100, 100}}
	for _, c := range coords {
		if g.Get(c[0], c[1]) {
			t.Errorf("Get(%d,%d) out of range should read dead", c[0], c[1])
		}
		g.Set(c[0], c[1], true)
		g.Toggle(c[0], c[1])
	}
	if pop := g.Population(); pop != 0 {
		t.Fatalf("out-of-range writes mutated the grid, population %d", pop)
	}
}

func TestLiveNeighborsAtEdges(t *testing.T) {
	g, _ := NewGrid(4, 4)
	// Fill everything; interior cells see 8 neighbors, corners only 3.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			g.Set(x, y, true)
		}
	}
	if n := g.LiveNeighbors(0, 0); n != 3 {
		t.Fatalf("corner neighbor count = %d, expected 3", n)
	}
	if n := g.LiveNeighbors(1, 0); n != 5 {
		t.Fatalf("edge neighbor count = %d, expected 5", n)
	}
	if n := g.LiveNeighbors(1, 1); n != 8 {
		t.Fatalf("interior neighbor count = %d, expected 8", n)
	}
}

func TestClearAndPopulation(t *testing.T) {
	g, _ := NewGrid(5, 5)
	g.Set(0, 0, true)
	g.Set(4, 4, true)
	g.Set(2, 3, true)
	if pop := g.Population(); pop != 3 {
		t.Fatalf("population = %d, expected 3", pop)
	}
	g.Clear()
	if pop := g.Population(); pop != 0 {
		t.Fatalf("population after clear = %d, expected 0", pop)
	}
}

// TestAdvanceReadsPreviousGeneration guards against in-place mutation: the
// blinker's center cell survives only if its neighbor counts come from the
// old generation rather than cells already rewritten this pass.
func TestAdvanceReadsPreviousGeneration(t *testing.T) {
	g, _ := NewGrid(5, 5)
	g.Set(1, 2, true)
	g.Set(2, 2, true)
	g.Set(3, 2, true)

	g.Advance()

	// In-place scanning kills (1,2) first, which would starve (2,2).
	if !g.Get(2, 2) {
		t.Fatal("center cell died: advance read partially updated state")
	}
	if pop := g.Population(); pop != 3 {
		t.Fatalf("blinker population = %d, expected 3", pop)
	}
}
