package input

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/stride/camera"
	"github.com/lixenwraith/stride/core"
)

// Collider is the static surface pointer rays are tested against
type Collider interface {
	Raycast(origin, dir mgl64.Vec3) (core.WorldPoint, bool)
}

// Resolver converts a pointer cell into the first world-space hit on the collider
// Pure query: no state, no side effects
type Resolver struct {
	surface Collider
}

// NewResolver creates a resolver over surface
func NewResolver(surface Collider) *Resolver {
	return &Resolver{surface: surface}
}

// Resolve returns the ground point under cell (x, y) of viewport v
// Cells outside the viewport and rays that miss report false
func (r *Resolver) Resolve(v camera.Viewport, x, y int) (core.WorldPoint, bool) {
	if x < 0 || y < 0 || x >= v.Width || y >= v.Height {
		return core.WorldPoint{}, false
	}
	origin, dir, err := v.Ray(x, y)
	if err != nil {
		return core.WorldPoint{}, false
	}
	return r.surface.Raycast(origin, dir)
}
