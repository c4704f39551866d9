package systems

import (
	"time"

	"github.com/lixenwraith/stride/constants"
	"github.com/lixenwraith/stride/physics"
)

// PhysicsSystem advances the body on a fixed tick decoupled from frame rate
type PhysicsSystem struct {
	stepper *physics.Stepper
	body    *physics.Body
	ticks   uint64
}

// NewPhysicsSystem creates a physics system stepping body at rate Hz
func NewPhysicsSystem(body *physics.Body, rate, maxTicks int) *PhysicsSystem {
	return &PhysicsSystem{
		stepper: physics.NewStepper(rate, maxTicks),
		body:    body,
	}
}

// Priority implements engine.System
func (s *PhysicsSystem) Priority() int {
	return constants.PriorityPhysics
}

// Update runs every tick owed for dt, move completions fire from inside body.Step
func (s *PhysicsSystem) Update(dt time.Duration) {
	n := s.stepper.Advance(dt)
	for i := 0; i < n; i++ {
		s.body.Step()
	}
	s.ticks += uint64(n)
}

// Ticks returns the total fixed steps taken
func (s *PhysicsSystem) Ticks() uint64 {
	return s.ticks
}
