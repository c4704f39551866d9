package physics

import "time"

// Stepper converts variable frame time into a whole number of fixed physics ticks
type Stepper struct {
	step     time.Duration
	maxTicks int
	acc      time.Duration
}

// NewStepper creates a stepper running at rate Hz, capping catch-up at maxTicks per frame
func NewStepper(rate, maxTicks int) *Stepper {
	if rate <= 0 {
		rate = 1
	}
	return &Stepper{
		step:     time.Second / time.Duration(rate),
		maxTicks: maxTicks,
	}
}

// Step returns the fixed tick duration
func (s *Stepper) Step() time.Duration {
	return s.step
}

// Advance accumulates dt and returns how many ticks are due
// Time beyond the catch-up cap is discarded so a stall never snowballs
func (s *Stepper) Advance(dt time.Duration) int {
	s.acc += dt
	n := int(s.acc / s.step)
	if s.maxTicks > 0 && n > s.maxTicks {
		n = s.maxTicks
		s.acc = 0
		return n
	}
	s.acc -= time.Duration(n) * s.step
	return n
}
