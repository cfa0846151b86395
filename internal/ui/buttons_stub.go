//go:build !ebiten

package ui

// Bar is a no-op placeholder for headless builds.
type Bar struct{}

// NewBar constructs a stub bar.
func NewBar() *Bar { return &Bar{} }

// Layout is a no-op in the headless build.
func (b *Bar) Layout(int) {}

// UpdateHover is a no-op in the headless build.
func (b *Bar) UpdateHover(int, int) {}

// HitTest never reports a hit in the headless build.
func (b *Bar) HitTest(int, int) (Command, bool) { return CmdNone, false }

// Draw is a no-op placeholder.
func (b *Bar) Draw(any, bool) {}
