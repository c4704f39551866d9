package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/stride/core"
)

// facingEpsilon is the residual yaw error (radians) at which a facing command is settled
const facingEpsilon = 1e-3

type activeMove struct {
	cmd   core.MoveCommand
	onEnd func()
}

// Body is the physics-driven character: kinematic XZ motion with the vertical axis owned by the surface
// A new MoveTo preempts the outstanding one and drops its completion callback
type Body struct {
	surface    *Surface
	halfHeight float64
	arrival    float64

	pos    mgl64.Vec3
	yaw    float64 // radians, 0 faces +Z, grows toward +X
	clip   string
	move   *activeMove
	facing *core.FacingCommand
}

// NewBody places a body at spawn; its height is snapped to the surface on the first Step
func NewBody(surface *Surface, spawn core.WorldPoint, halfHeight, arrival float64) *Body {
	return &Body{
		surface:    surface,
		halfHeight: halfHeight,
		arrival:    arrival,
		pos:        spawn.Vec(),
	}
}

// MoveTo starts translating toward the command target; onEnd fires once on arrival
func (b *Body) MoveTo(cmd core.MoveCommand, onEnd func()) {
	b.move = &activeMove{cmd: cmd, onEnd: onEnd}
}

// LookTo starts easing the heading toward the command target
func (b *Body) LookTo(cmd core.FacingCommand) {
	c := cmd
	b.facing = &c
}

// SetAnimation selects the active animation clip
func (b *Body) SetAnimation(clip string) {
	b.clip = clip
}

// Animation returns the active animation clip
func (b *Body) Animation() string {
	return b.clip
}

// Position returns the body origin
func (b *Body) Position() core.WorldPoint {
	return core.PointFromVec(b.pos)
}

// Yaw returns the heading around the vertical axis in radians
func (b *Body) Yaw() float64 {
	return b.yaw
}

// Moving reports whether a move command is outstanding
func (b *Body) Moving() bool {
	return b.move != nil
}

// Step advances the body by one fixed physics tick
func (b *Body) Step() {
	b.stepFacing()
	b.stepMove()
}

func (b *Body) stepFacing() {
	if b.facing == nil {
		return
	}
	dx := b.facing.X - b.pos.X()
	dz := b.facing.Z - b.pos.Z()
	if dx == 0 && dz == 0 {
		b.facing = nil
		return
	}

	diff := wrapAngle(math.Atan2(dx, dz) - b.yaw)
	if math.Abs(diff) < facingEpsilon {
		b.yaw = wrapAngle(b.yaw + diff)
		b.facing = nil
		return
	}
	b.yaw = wrapAngle(b.yaw + diff*b.facing.Alpha)
}

func (b *Body) stepMove() {
	if b.move == nil {
		b.snapToSurface()
		return
	}

	cmd := b.move.cmd
	delta := mgl64.Vec2{cmd.X - b.pos.X(), cmd.Z - b.pos.Z()}
	dist := delta.Len()

	reach := math.Max(cmd.Speed, b.arrival)
	arrivedXZ := dist <= reach
	if arrivedXZ {
		b.pos[0], b.pos[2] = cmd.X, cmd.Z
	} else {
		step := delta.Mul(cmd.Speed / dist)
		b.pos[0] += step.X()
		b.pos[2] += step.Y()
	}

	arrivedY := true
	if cmd.Constrained() {
		dy := *cmd.Y - b.pos.Y()
		if math.Abs(dy) <= reach {
			b.pos[1] = *cmd.Y
		} else {
			b.pos[1] += math.Copysign(cmd.Speed, dy)
			arrivedY = false
		}
	} else {
		b.snapToSurface()
	}

	if arrivedXZ && arrivedY {
		onEnd := b.move.onEnd
		b.move = nil
		if onEnd != nil {
			onEnd()
		}
	}
}

func (b *Body) snapToSurface() {
	if b.surface == nil {
		return
	}
	b.pos[1] = b.surface.HeightAt(b.pos.X(), b.pos.Z()) + b.halfHeight
}

// wrapAngle maps a radian angle to (-pi, pi]
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
