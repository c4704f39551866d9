package core

// MoveCommand asks a character body to translate toward (X, Z)
// Y nil leaves the vertical channel to the surface/physics layer
type MoveCommand struct {
	X     float64
	Y     *float64
	Z     float64
	Speed float64
}

// FacingCommand asks a character body to rotate toward (X, Z)
// Y nil restricts rotation to the vertical axis; Alpha in (0,1] is the per-tick smoothing factor
type FacingCommand struct {
	X     float64
	Y     *float64
	Z     float64
	Alpha float64
}

// Constrained reports whether the command pins the vertical axis
func (c MoveCommand) Constrained() bool {
	return c.Y != nil
}
