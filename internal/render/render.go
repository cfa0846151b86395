//go:build ebiten

package render

import (
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/internal/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backdropEven = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	backdropOdd  = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	borderColor  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	liveColor    = color.RGBA{A: 255}
)

// Renderer draws the grid scene: a checkerboard backdrop, the grid border,
// and the live cells. It holds no per-frame state; all geometry comes from
// the layout metrics passed in.
type Renderer struct{}

// New constructs a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Draw renders the grid state onto dst using the provided metrics.
func (r *Renderer) Draw(dst *ebiten.Image, g *core.Grid, m layout.Metrics) {
	dst.Fill(color.Black)

	r.drawBackdrop(dst, m)
	r.drawBorder(dst, m)
	r.drawCells(dst, g, m)
}

// drawBackdrop paints alternating near-white cells so the grid reads as a
// board even when empty.
func (r *Renderer) drawBackdrop(dst *ebiten.Image, m layout.Metrics) {
	size := float32(m.CellSize)
	for y := 0; y < m.GridH; y++ {
		for x := 0; x < m.GridW; x++ {
			sx, sy := m.GridToScreen(x, y)
			clr := backdropOdd
			if (x+y)%2 == 0 {
				clr = backdropEven
			}
			vector.DrawFilledRect(dst, float32(sx), float32(sy), size, size, clr, false)
		}
	}
}

func (r *Renderer) drawBorder(dst *ebiten.Image, m layout.Metrics) {
	rx, ry, rw, rh := m.GridRect()
	vector.StrokeRect(dst, float32(rx), float32(ry), float32(rw), float32(rh), 3, borderColor, false)
}

func (r *Renderer) drawCells(dst *ebiten.Image, g *core.Grid, m layout.Metrics) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !g.Get(x, y) {
				continue
			}
			rx, ry, rw, rh := m.CellRect(x, y)
			vector.DrawFilledRect(dst, float32(rx), float32(ry), float32(rw), float32(rh), liveColor, false)
		}
	}
}
