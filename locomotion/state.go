package locomotion

import "github.com/lixenwraith/stride/core"

// Mode is the controller's discrete locomotion state
type Mode int

const (
	Idle Mode = iota
	Moving
)

func (m Mode) String() string {
	if m == Moving {
		return "MOVING"
	}
	return "IDLE"
}

// State is a snapshot of the controller's owned locomotion state
// Running is the sole source of truth for presentation
type State struct {
	Target     core.WorldPoint
	HasTarget  bool // false until the first accepted click
	Running    bool
	Generation core.Generation
}

// Mode derives the discrete state from the running flag
func (s State) Mode() Mode {
	if s.Running {
		return Moving
	}
	return Idle
}

// MoveCommandFor derives the move command for target, leaving Y unconstrained
func MoveCommandFor(target core.WorldPoint, speed float64) core.MoveCommand {
	return core.MoveCommand{X: target.X, Z: target.Z, Speed: speed}
}

// FacingCommandFor derives the facing command for target, rotating about the vertical axis only
func FacingCommandFor(target core.WorldPoint, alpha float64) core.FacingCommand {
	return core.FacingCommand{X: target.X, Z: target.Z, Alpha: alpha}
}
