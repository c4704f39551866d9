package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/stride/constants"
	"github.com/lixenwraith/stride/core"
	"github.com/lixenwraith/stride/locomotion"
)

// MarkerState is either Hidden or Visible with a spin phase
type MarkerState struct {
	visible bool
	phase   time.Duration
}

// Hidden is the marker state while idle
func Hidden() MarkerState {
	return MarkerState{}
}

// Visible is the marker state while running, phase measured from the last appearance
func Visible(phase time.Duration) MarkerState {
	return MarkerState{visible: true, phase: phase}
}

// IsVisible reports the variant
func (m MarkerState) IsVisible() bool {
	return m.visible
}

// Phase returns the spin phase, zero when hidden
func (m MarkerState) Phase() time.Duration {
	return m.phase
}

// MarkerSystem presents the spinning arrow above the current target
type MarkerSystem struct {
	state     MarkerState
	target    core.WorldPoint
	offset    float64
	period    time.Duration
	keyframes []float64
}

// NewMarkerSystem creates a hidden marker
func NewMarkerSystem(offset float64, period time.Duration) *MarkerSystem {
	if period <= 0 {
		period = constants.MarkerSpinPeriod
	}
	return &MarkerSystem{
		offset:    offset,
		period:    period,
		keyframes: constants.MarkerKeyframes,
	}
}

// OnLocomotionChanged shows the marker iff running, restarting the spin on each appearance
func (m *MarkerSystem) OnLocomotionChanged(s locomotion.State) {
	if !s.Running {
		m.state = Hidden()
		return
	}
	if !m.state.visible {
		m.state = Visible(0)
	}
	m.target = s.Target
}

// Priority implements engine.System
func (m *MarkerSystem) Priority() int {
	return constants.PriorityMarker
}

// Update advances the spin while visible
func (m *MarkerSystem) Update(dt time.Duration) {
	if !m.state.visible {
		return
	}
	m.state.phase = (m.state.phase + dt) % m.period
}

// State returns the current variant
func (m *MarkerSystem) State() MarkerState {
	return m.state
}

// Visible reports whether the marker is shown
func (m *MarkerSystem) Visible() bool {
	return m.state.visible
}

// Position returns the marker anchor raised above the target
func (m *MarkerSystem) Position() (core.WorldPoint, bool) {
	if !m.state.visible {
		return core.WorldPoint{}, false
	}
	return m.target.Offset(m.offset), true
}

// Angle samples the keyframe track in degrees
func (m *MarkerSystem) Angle() float64 {
	seg, frac := m.segment()
	return m.keyframes[seg] + (m.keyframes[seg+1]-m.keyframes[seg])*frac
}

// Frame returns the keyframe segment the spin is in, used to pick a glyph
func (m *MarkerSystem) Frame() int {
	seg, _ := m.segment()
	return seg
}

func (m *MarkerSystem) segment() (int, float64) {
	n := len(m.keyframes) - 1
	t := float64(m.state.phase) / float64(m.period) * float64(n)
	seg := int(math.Floor(t))
	if seg >= n {
		seg = n - 1
	}
	return seg, t - float64(seg)
}
