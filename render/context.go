package render

import (
	"github.com/lixenwraith/stride/camera"
	"github.com/lixenwraith/stride/constants"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Viewport maps world space onto the scene area
	Viewport camera.Viewport
	Palette  Palette

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	Frame int64
	Muted bool
}

// SceneHeight is the number of rows above the HUD
func (c RenderContext) SceneHeight() int {
	return max(c.ScreenHeight-constants.HUDRows, 0)
}
