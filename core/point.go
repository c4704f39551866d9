package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// WorldPoint is a position in scene space
// Treated as an immutable value: replace it, never mutate fields in place
type WorldPoint struct {
	X, Y, Z float64
}

// Point builds a WorldPoint from components
func Point(x, y, z float64) WorldPoint {
	return WorldPoint{X: x, Y: y, Z: z}
}

// PointFromVec converts an mgl64 vector to a WorldPoint
func PointFromVec(v mgl64.Vec3) WorldPoint {
	return WorldPoint{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// Vec returns the point as an mgl64 vector
func (p WorldPoint) Vec() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// Offset returns a copy raised by dy on the vertical axis
func (p WorldPoint) Offset(dy float64) WorldPoint {
	return WorldPoint{X: p.X, Y: p.Y + dy, Z: p.Z}
}

// HorizontalDistance ignores the vertical axis
func (p WorldPoint) HorizontalDistance(q WorldPoint) float64 {
	return mgl64.Vec2{q.X - p.X, q.Z - p.Z}.Len()
}

func (p WorldPoint) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", p.X, p.Y, p.Z)
}

// Generation identifies one accepted movement target
// Monotonic within a session, zero means "no target accepted yet"
type Generation uint64
