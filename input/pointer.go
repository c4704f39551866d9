package input

import (
	"github.com/gdamore/tcell/v2"
)

const pressMask = tcell.Button1 | tcell.Button2 | tcell.Button3

// Pointer turns raw mouse reports into click, drag and wheel intents
// A press released within the drag threshold of where it started is a click
type Pointer struct {
	threshold int
	zoomStep  float64

	pressed  bool
	primary  bool
	dragging bool
	startX   int
	startY   int
	lastX    int
	lastY    int
}

// NewPointer creates a classifier; threshold is in cells
func NewPointer(threshold int, zoomStep float64) *Pointer {
	return &Pointer{threshold: threshold, zoomStep: zoomStep}
}

// Handle classifies one mouse event
func (p *Pointer) Handle(ev *tcell.EventMouse) Intent {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		return Intent{Type: IntentZoom, Zoom: p.zoomStep}
	case buttons&tcell.WheelDown != 0:
		return Intent{Type: IntentZoom, Zoom: -p.zoomStep}
	}

	held := buttons & pressMask
	switch {
	case held != 0 && !p.pressed:
		p.pressed = true
		p.primary = held&tcell.Button1 != 0
		p.dragging = false
		p.startX, p.startY = x, y
		p.lastX, p.lastY = x, y
		return Intent{}

	case held != 0:
		dx, dy := x-p.lastX, y-p.lastY
		p.lastX, p.lastY = x, y
		if !p.dragging && (abs(x-p.startX) > p.threshold || abs(y-p.startY) > p.threshold) {
			p.dragging = true
			// First drag report carries the whole distance from the press
			dx, dy = x-p.startX, y-p.startY
		}
		if p.dragging && (dx != 0 || dy != 0) {
			return Intent{Type: IntentOrbit, DX: dx, DY: dy}
		}
		return Intent{}

	case p.pressed:
		p.pressed = false
		if p.dragging || !p.primary {
			p.dragging = false
			return Intent{}
		}
		return Intent{Type: IntentTarget, X: p.startX, Y: p.startY}
	}
	return Intent{}
}

// Dragging reports whether a drag gesture is in progress
func (p *Pointer) Dragging() bool {
	return p.dragging
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
