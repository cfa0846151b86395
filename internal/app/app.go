//go:build ebiten

package app

import (
	"fmt"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/layout"
	"lifegrid/internal/patterns"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game wires the grid engine, layout engine, and simulation clock into the
// ebiten.Game interface. All state mutation happens synchronously inside
// Update; Draw only reads.
type Game struct {
	grid    *core.Grid
	clock   *core.Clock
	rng     *core.RNG
	bar     *ui.Bar
	painter *render.Renderer

	density    float64
	generation int

	winW, winH int
}

// New constructs a Game from the parsed configuration, optionally seeding
// an initial pattern.
func New(cfg *Config) (*Game, error) {
	grid, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.Pattern != "" {
		if err := patterns.ApplyCentered(grid, cfg.Pattern); err != nil {
			return nil, err
		}
	}
	return &Game{
		grid:    grid,
		clock:   core.NewClock(),
		rng:     core.NewRNG(cfg.Seed),
		bar:     ui.NewBar(),
		painter: render.New(),
		density: cfg.Density,
	}, nil
}

// Update processes input, then advances the simulation if the clock says
// the current generation's time is up.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, cmd := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			g.dispatch(cmd)
		}
	}

	g.bar.Layout(g.winW)
	mx, my := ebiten.CursorPosition()
	g.bar.UpdateHover(mx, my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if cmd, ok := g.bar.HitTest(mx, my); ok {
			g.dispatch(cmd)
		} else {
			m := g.metrics()
			if x, y, ok := m.ScreenToGrid(float64(mx), float64(my)); ok {
				g.grid.Toggle(x, y)
			}
		}
	}

	if g.clock.Tick(time.Now()) {
		g.grid.Advance()
		g.generation++
	}
	return nil
}

var keyBindings = map[ebiten.Key]ui.Command{
	ebiten.KeySpace:      ui.CmdTogglePause,
	ebiten.KeyR:          ui.CmdSeedRandom,
	ebiten.KeyG:          ui.CmdSeedGlider,
	ebiten.KeyT:          ui.CmdSeedTest,
	ebiten.KeyC:          ui.CmdClear,
	ebiten.KeyEqual:      ui.CmdSpeedUp,
	ebiten.KeyKPAdd:      ui.CmdSpeedUp,
	ebiten.KeyMinus:      ui.CmdSlowDown,
	ebiten.KeyKPSubtract: ui.CmdSlowDown,
}

func (g *Game) dispatch(cmd ui.Command) {
	switch cmd {
	case ui.CmdTogglePause:
		g.clock.TogglePause()
	case ui.CmdSpeedUp:
		g.clock.SpeedUp()
	case ui.CmdSlowDown:
		g.clock.SlowDown()
	case ui.CmdSeedRandom:
		patterns.ApplyRandom(g.grid, g.rng, g.density)
		g.generation = 0
	case ui.CmdSeedGlider:
		// Built-in names cannot miss; seeding never fails here.
		_ = patterns.ApplyCentered(g.grid, "glider")
		g.generation = 0
	case ui.CmdSeedTest:
		_ = patterns.ApplyCentered(g.grid, "test")
		g.generation = 0
	case ui.CmdClear:
		patterns.Clear(g.grid)
		g.generation = 0
	}
}

func (g *Game) metrics() layout.Metrics {
	return layout.Compute(float64(g.winW), float64(g.winH), g.grid.Width(), g.grid.Height())
}

// Draw renders the scene. Layout geometry is recomputed from the current
// window size so resizes take effect on the very next frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.grid, g.metrics())
	g.bar.Draw(screen, g.clock.Paused())

	status := fmt.Sprintf("generation %d  population %d  speed %.2f gen/s",
		g.generation, g.grid.Population(), g.clock.GenerationsPerSecond())
	if g.clock.Paused() {
		status += "  [paused]"
	}
	ebitenutil.DebugPrintAt(screen, status, int(layout.Margin), g.winH-24)
}

// Layout passes the window size through unchanged so the layout engine
// works in real pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	g.winW, g.winH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
