//go:build !ebiten

package render

import (
	"lifegrid/internal/core"
	"lifegrid/internal/layout"
)

// Renderer is a no-op placeholder for headless builds.
type Renderer struct{}

// New constructs a stub renderer.
func New() *Renderer { return &Renderer{} }

// Draw is a no-op placeholder.
func (r *Renderer) Draw(any, *core.Grid, layout.Metrics) {}
