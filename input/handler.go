package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/stride/camera"
	"github.com/lixenwraith/stride/core"
	"github.com/sirupsen/logrus"
)

// Targeter accepts resolved ground points
type Targeter interface {
	OnSurfaceClicked(p core.WorldPoint)
}

// Orbiter accepts camera gestures
type Orbiter interface {
	Drag(dx, dy int)
	Zoom(delta float64)
}

// Handler routes terminal events: clicks through the resolver to the controller, drags to the camera
type Handler struct {
	pointer  *Pointer
	resolver *Resolver
	target   Targeter
	orbit    Orbiter
	viewport func() camera.Viewport
	log      logrus.FieldLogger
}

// NewHandler wires the event router; viewport must return the projection currently on screen
func NewHandler(pointer *Pointer, resolver *Resolver, target Targeter, orbit Orbiter, viewport func() camera.Viewport, log logrus.FieldLogger) *Handler {
	return &Handler{
		pointer:  pointer,
		resolver: resolver,
		target:   target,
		orbit:    orbit,
		viewport: viewport,
		log:      log,
	}
}

// HandleEvent applies pointer intents and returns the intent for the caller's own handling
func (h *Handler) HandleEvent(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return keyIntent(ev)

	case *tcell.EventResize:
		return Intent{Type: IntentResize}

	case *tcell.EventMouse:
		intent := h.pointer.Handle(ev)
		switch intent.Type {
		case IntentTarget:
			p, ok := h.resolver.Resolve(h.viewport(), intent.X, intent.Y)
			if !ok {
				h.log.WithFields(logrus.Fields{"x": intent.X, "y": intent.Y}).Debug("pointer missed surface")
				return Intent{}
			}
			h.target.OnSurfaceClicked(p)
		case IntentOrbit:
			h.orbit.Drag(intent.DX, intent.DY)
		case IntentZoom:
			h.orbit.Zoom(intent.Zoom)
		}
		return intent
	}
	return Intent{}
}

func keyIntent(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Type: IntentQuit}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return Intent{Type: IntentQuit}
		case 'm', 'M':
			return Intent{Type: IntentToggleMute}
		}
	}
	return Intent{}
}
