//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"lifegrid/internal/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	buttonWidth   = 100
	buttonHeight  = 40
	buttonSpacing = 10
)

type button struct {
	label   string
	cmd     Command
	rect    image.Rectangle
	hovered bool
}

// Bar is the row of control buttons centered in the header band above the
// grid. Hover state is purely visual.
type Bar struct {
	buttons []button
	winW    int
}

// NewBar constructs the standard control row.
func NewBar() *Bar {
	return &Bar{buttons: []button{
		{label: "Pause", cmd: CmdTogglePause},
		{label: "Speed -", cmd: CmdSlowDown},
		{label: "Speed +", cmd: CmdSpeedUp},
		{label: "Random", cmd: CmdSeedRandom},
		{label: "Clear", cmd: CmdClear},
	}}
}

// Layout recomputes button rectangles for the given window width. Cheap
// enough to call every frame, which keeps the bar centered through
// resizes.
func (b *Bar) Layout(winW int) {
	b.winW = winW
	n := len(b.buttons)
	total := n*buttonWidth + (n-1)*buttonSpacing
	startX := (winW - total) / 2
	y := int(layout.Margin) / 2
	for i := range b.buttons {
		x := startX + i*(buttonWidth+buttonSpacing)
		b.buttons[i].rect = image.Rect(x, y, x+buttonWidth, y+buttonHeight)
	}
}

// UpdateHover refreshes the visual highlight from the cursor position.
func (b *Bar) UpdateHover(mx, my int) {
	for i := range b.buttons {
		b.buttons[i].hovered = pointInRect(mx, my, b.buttons[i].rect)
	}
}

// HitTest resolves a click position to a button's command.
func (b *Bar) HitTest(mx, my int) (Command, bool) {
	for i := range b.buttons {
		if pointInRect(mx, my, b.buttons[i].rect) {
			return b.buttons[i].cmd, true
		}
	}
	return CmdNone, false
}

// Draw renders the bar. The pause button's label reflects the clock state.
func (b *Bar) Draw(screen *ebiten.Image, paused bool) {
	for i := range b.buttons {
		btn := &b.buttons[i]
		label := btn.label
		if btn.cmd == CmdTogglePause && paused {
			label = "Resume"
		}
		b.drawButton(screen, btn.rect, label, btn.hovered)
	}
}

func (b *Bar) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, hovered bool) {
	bg := color.RGBA{R: 70, G: 70, B: 80, A: 255}
	if hovered {
		bg = color.RGBA{R: 100, G: 100, B: 115, A: 255}
	}
	x := float32(rect.Min.X)
	y := float32(rect.Min.Y)
	w := float32(rect.Dx())
	h := float32(rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	tx := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	ty := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, tx, ty, color.RGBA{R: 235, G: 235, B: 240, A: 255})
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
