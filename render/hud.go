package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/stride/constants"
	"github.com/lixenwraith/stride/locomotion"
)

const helpText = "click: move   drag: orbit   wheel: zoom   m: mute   q: quit"

// StatusSource exposes the controller state to the HUD
type StatusSource interface {
	State() locomotion.State
}

// ClipSource exposes the active animation clip
type ClipSource interface {
	Animation() string
}

// PlayingSource exposes whether the footstep loop is audible
type PlayingSource interface {
	Playing() bool
}

// HUDRenderer draws the status line and help line under the scene
type HUDRenderer struct {
	status StatusSource
	clip   ClipSource
	steps  PlayingSource
}

// NewHUDRenderer creates the HUD renderer
func NewHUDRenderer(status StatusSource, clip ClipSource, steps PlayingSource) *HUDRenderer {
	return &HUDRenderer{status: status, clip: clip, steps: steps}
}

// Render draws both HUD rows
func (h *HUDRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	row := ctx.SceneHeight()
	if row >= ctx.ScreenHeight {
		return
	}
	base := tcell.StyleDefault.Background(RgbHUDBackground).Foreground(RgbHUDText)
	for y := row; y < ctx.ScreenHeight; y++ {
		for x := 0; x < ctx.ScreenWidth; x++ {
			screen.SetContent(x, y, ' ', nil, base)
		}
	}

	s := h.status.State()
	label, color := constants.StatusTextIdle, RgbStatusIdle
	if s.Running {
		label, color = constants.StatusTextRunning, RgbStatusRunning
	}
	x := drawText(screen, 0, row, label, base.Background(color).Bold(true), ctx.ScreenWidth)

	steps := "off"
	if h.steps.Playing() {
		steps = "on"
	}
	sound := "on"
	if ctx.Muted {
		sound = "muted"
	}
	target := "-"
	if s.HasTarget {
		target = fmt.Sprintf("(%.1f, %.1f, %.1f)", s.Target.X, s.Target.Y, s.Target.Z)
	}
	info := fmt.Sprintf(" clip: %s  steps: %s  gen: %d  target: %s  sound: %s",
		h.clip.Animation(), steps, s.Generation, target, sound)
	drawText(screen, x, row, info, base, ctx.ScreenWidth)

	if row+1 < ctx.ScreenHeight {
		drawText(screen, 0, row+1, helpText, base.Foreground(RgbHUDHelp), ctx.ScreenWidth)
	}
}

// drawText writes s from x, clipped at limit, and returns the column after it
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style, limit int) int {
	for _, r := range s {
		if x >= limit {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
