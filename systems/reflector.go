package systems

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/stride/constants"
	"github.com/lixenwraith/stride/core"
	"github.com/lixenwraith/stride/locomotion"
)

// Presentation is the clip and footstep state derived from the running flag
type Presentation struct {
	Clip            string
	FootstepPlaying bool
}

// PresentationFor derives the presentation tuple, no other input is consulted
func PresentationFor(s locomotion.State) Presentation {
	if s.Running {
		return Presentation{Clip: constants.ClipRunning, FootstepPlaying: true}
	}
	return Presentation{Clip: constants.ClipIdle, FootstepPlaying: false}
}

// Animated is the character body as seen by the reflector
type Animated interface {
	SetAnimation(clip string)
	Position() core.WorldPoint
}

// FootstepSource is the looping positional sound attached to the character
type FootstepSource interface {
	Play()
	Stop()
	Track(source core.WorldPoint, pos, right mgl64.Vec3)
}

// Listener supplies the ear position and its right-hand axis
type Listener interface {
	Listener() (pos, right mgl64.Vec3)
}

// ReflectorSystem mirrors controller state onto the body clip and footstep loop
type ReflectorSystem struct {
	body    Animated
	steps   FootstepSource
	ear     Listener
	current Presentation
}

// NewReflectorSystem creates the reflector and applies the idle presentation
func NewReflectorSystem(body Animated, steps FootstepSource, ear Listener) *ReflectorSystem {
	r := &ReflectorSystem{body: body, steps: steps, ear: ear}
	r.apply(PresentationFor(locomotion.State{}))
	return r
}

// OnLocomotionChanged re-derives presentation on every controller transition
func (r *ReflectorSystem) OnLocomotionChanged(s locomotion.State) {
	r.apply(PresentationFor(s))
}

// Presentation returns the last applied tuple
func (r *ReflectorSystem) Presentation() Presentation {
	return r.current
}

// Priority implements engine.System
func (r *ReflectorSystem) Priority() int {
	return constants.PriorityReflector
}

// Update keeps the footstep source attached to the body
func (r *ReflectorSystem) Update(dt time.Duration) {
	if r.ear == nil {
		return
	}
	pos, right := r.ear.Listener()
	r.steps.Track(r.body.Position(), pos, right)
}

func (r *ReflectorSystem) apply(p Presentation) {
	r.body.SetAnimation(p.Clip)
	if p.FootstepPlaying {
		r.steps.Play()
	} else {
		r.steps.Stop()
	}
	r.current = p
}
