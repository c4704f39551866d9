package physics

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/stride/core"
)

// SurfaceSpec describes the static stadium collider
// Flat field inside FieldRadius, a smooth rise to StandHeight at StandRadius, flat stands out to Bounds
type SurfaceSpec struct {
	FieldHeight float64 `yaml:"field_height"`
	FieldRadius float64 `yaml:"field_radius"`
	StandRadius float64 `yaml:"stand_radius"`
	StandHeight float64 `yaml:"stand_height"`
	Bounds      float64 `yaml:"bounds"`
	RayStep     float64 `yaml:"ray_step"`
	RayRange    float64 `yaml:"ray_range"`
}

// Validate checks the radii are ordered and the ray parameters usable
func (s SurfaceSpec) Validate() error {
	if s.FieldRadius <= 0 || s.StandRadius < s.FieldRadius || s.Bounds < s.StandRadius {
		return fmt.Errorf("surface radii must satisfy 0 < field <= stand <= bounds, got %.1f/%.1f/%.1f",
			s.FieldRadius, s.StandRadius, s.Bounds)
	}
	if s.RayStep <= 0 || s.RayRange <= s.RayStep {
		return fmt.Errorf("surface ray step %.2f / range %.2f invalid", s.RayStep, s.RayRange)
	}
	return nil
}

// Surface is the designated static collidable mesh queried by the pointer resolver
type Surface struct {
	spec SurfaceSpec
}

// bisectIterations refines a bracketed ray hit to well below one world unit
const bisectIterations = 24

// NewSurface creates a surface from a validated spec
func NewSurface(spec SurfaceSpec) (*Surface, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Surface{spec: spec}, nil
}

// Spec returns the surface description
func (s *Surface) Spec() SurfaceSpec {
	return s.spec
}

// Contains reports whether (x, z) lies over collidable ground
func (s *Surface) Contains(x, z float64) bool {
	return math.Hypot(x, z) <= s.spec.Bounds
}

// HeightAt returns the ground height at (x, z), clamped to the stands outside the field
func (s *Surface) HeightAt(x, z float64) float64 {
	r := math.Hypot(x, z)
	switch {
	case r <= s.spec.FieldRadius:
		return s.spec.FieldHeight
	case r >= s.spec.StandRadius:
		return s.spec.StandHeight
	}
	t := (r - s.spec.FieldRadius) / (s.spec.StandRadius - s.spec.FieldRadius)
	t = t * t * (3 - 2*t)
	return s.spec.FieldHeight + t*(s.spec.StandHeight-s.spec.FieldHeight)
}

// Raycast returns the first intersection of the ray with the surface
// A miss (zero direction, origin under ground, climbing above the stands or out of range) returns false
// The ray is clipped to the bounds cylinder and the height band, then split at the field and stand radii:
// flat runs are solved as planes and only the rise between them is marched
func (s *Surface) Raycast(origin, dir mgl64.Vec3) (core.WorldPoint, bool) {
	if dir.Len() == 0 {
		return core.WorldPoint{}, false
	}
	dir = dir.Normalize()

	if s.Contains(origin.X(), origin.Z()) && origin.Y() < s.HeightAt(origin.X(), origin.Z()) {
		return core.WorldPoint{}, false
	}

	lo, hi, ok := s.span(origin, dir)
	if !ok {
		return core.WorldPoint{}, false
	}

	// Entering the bounds beneath the stands
	if start := origin.Add(dir.Mul(lo)); start.Y() < s.HeightAt(start.X(), start.Z()) {
		return core.WorldPoint{}, false
	}

	cuts := []float64{lo}
	for _, r := range []float64{s.spec.FieldRadius, s.spec.StandRadius} {
		if a, b, ok := circleCrossings(origin, dir, r); ok {
			for _, t := range []float64{a, b} {
				if t > lo && t < hi {
					cuts = append(cuts, t)
				}
			}
		}
	}
	cuts = append(cuts, hi)
	sort.Float64s(cuts)

	for i := 0; i+1 < len(cuts); i++ {
		if t, ok := s.hitIn(origin, dir, cuts[i], cuts[i+1]); ok {
			return core.PointFromVec(origin.Add(dir.Mul(t))), true
		}
	}
	return core.WorldPoint{}, false
}

// span clips [0, RayRange] to the bounds cylinder and the band between the lowest and highest ground
func (s *Surface) span(origin, dir mgl64.Vec3) (lo, hi float64, ok bool) {
	lo, hi = 0, s.spec.RayRange

	a, b, hit := circleCrossings(origin, dir, s.spec.Bounds)
	switch {
	case hit:
		lo, hi = math.Max(lo, a), math.Min(hi, b)
	case !s.Contains(origin.X(), origin.Z()):
		return 0, 0, false
	}

	bottom := math.Min(s.spec.FieldHeight, s.spec.StandHeight)
	top := math.Max(s.spec.FieldHeight, s.spec.StandHeight)
	oy, dy := origin.Y(), dir.Y()
	switch {
	case dy < 0:
		lo = math.Max(lo, (top-oy)/dy)
		hi = math.Min(hi, (bottom-oy)/dy)
	case dy > 0:
		hi = math.Min(hi, (top-oy)/dy)
	case oy > top:
		return 0, 0, false
	}
	return lo, hi, lo <= hi
}

// hitIn finds the first ground contact in [lo, hi], a run lying entirely in one region
// A run starting at or below ground is a hit at lo, which covers the wall of a stepped profile
func (s *Surface) hitIn(origin, dir mgl64.Vec3, lo, hi float64) (float64, bool) {
	above := func(t float64) float64 {
		p := origin.Add(dir.Mul(t))
		return p.Y() - s.HeightAt(p.X(), p.Z())
	}

	mid := origin.Add(dir.Mul((lo + hi) / 2))
	r := math.Hypot(mid.X(), mid.Z())
	if r <= s.spec.FieldRadius || r >= s.spec.StandRadius {
		ground := s.HeightAt(mid.X(), mid.Z())
		if origin.Y()+dir.Y()*lo <= ground {
			return lo, true
		}
		if dir.Y() >= 0 {
			return 0, false
		}
		t := (ground - origin.Y()) / dir.Y()
		return t, t <= hi
	}

	if above(lo) <= 0 {
		return lo, true
	}

	prev := lo
	for t := lo + s.spec.RayStep; prev < hi; t += s.spec.RayStep {
		t = math.Min(t, hi)
		if above(t) <= 0 {
			return s.bisect(above, prev, t), true
		}
		prev = t
	}
	return 0, false
}

// bisect narrows [lo, hi] where the ray crosses from above to below ground
func (s *Surface) bisect(above func(float64) float64, lo, hi float64) float64 {
	for i := 0; i < bisectIterations; i++ {
		mid := (lo + hi) / 2
		if above(mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}

// circleCrossings returns the ray parameters where the ray meets the vertical cylinder of radius r
// ok is false for a ray parallel to the axis or one that never reaches the cylinder
func circleCrossings(origin, dir mgl64.Vec3, r float64) (t0, t1 float64, ok bool) {
	a := dir.X()*dir.X() + dir.Z()*dir.Z()
	if a == 0 {
		return 0, 0, false
	}
	b := 2 * (origin.X()*dir.X() + origin.Z()*dir.Z())
	c := origin.X()*origin.X() + origin.Z()*origin.Z() - r*r
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	return (-b - sq) / (2 * a), (-b + sq) / (2 * a), true
}
