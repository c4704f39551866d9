package camera

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/stride/core"
)

type stubTarget struct {
	pos core.WorldPoint
	yaw float64
}

func (s *stubTarget) Position() core.WorldPoint { return s.pos }
func (s *stubTarget) Yaw() float64              { return s.yaw }

// TestRigFirstUpdateSnaps verifies the first frame places the camera at the orbit radius
func TestRigFirstUpdateSnaps(t *testing.T) {
	target := &stubTarget{pos: core.Point(10, 4, -3)}
	r := NewRig(target, DefaultConfig())

	r.Update(16 * time.Millisecond)

	if r.Focus() != target.pos.Vec() {
		t.Errorf("Expected focus %v, got %v", target.pos.Vec(), r.Focus())
	}
	if d := r.Eye().Sub(r.Focus()).Len(); math.Abs(d-DefaultConfig().Radius) > 1e-6 {
		t.Errorf("Expected eye at radius %f, got %f", DefaultConfig().Radius, d)
	}
}

// TestRigDampedFollow verifies the camera lags a moving target then converges
func TestRigDampedFollow(t *testing.T) {
	target := &stubTarget{}
	r := NewRig(target, DefaultConfig())
	r.Update(16 * time.Millisecond)

	target.pos = core.Point(100, 0, 0)
	r.Update(16 * time.Millisecond)

	fx := r.Focus().X()
	if fx <= 0 || fx >= 100 {
		t.Errorf("Expected focus between 0 and 100 after one damped frame, got %f", fx)
	}

	for i := 0; i < 600; i++ {
		r.Update(16 * time.Millisecond)
	}
	if math.Abs(r.Focus().X()-100) > 1e-3 {
		t.Errorf("Expected focus to converge on 100, got %f", r.Focus().X())
	}
}

// TestRigIgnoresTargetYawWhenUnlocked verifies character facing never steers the camera
func TestRigIgnoresTargetYawWhenUnlocked(t *testing.T) {
	target := &stubTarget{}
	r := NewRig(target, DefaultConfig())
	r.Update(0)
	before := r.Eye()

	target.yaw = math.Pi / 2
	for i := 0; i < 100; i++ {
		r.Update(16 * time.Millisecond)
	}
	if !r.Eye().ApproxEqualThreshold(before, 1e-9) {
		t.Errorf("Expected eye unchanged at %v, got %v", before, r.Eye())
	}
}

// TestRigFollowsTargetYawWhenLocked verifies the lock option does couple facing
func TestRigFollowsTargetYawWhenLocked(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LockTargetRotation = true
	target := &stubTarget{}
	r := NewRig(target, cfg)
	r.Update(0)
	before := r.Eye()

	target.yaw = math.Pi / 2
	for i := 0; i < 100; i++ {
		r.Update(16 * time.Millisecond)
	}
	if r.Eye().ApproxEqualThreshold(before, 1e-3) {
		t.Error("Expected locked rig to orbit with the target yaw")
	}
}

// TestRigDragClampsElevation verifies drag input respects elevation limits
func TestRigDragClampsElevation(t *testing.T) {
	cfg := DefaultConfig()
	r := NewRig(&stubTarget{}, cfg)

	az := r.Azimuth()
	r.Drag(10, 0)
	if r.Azimuth() == az {
		t.Error("Expected horizontal drag to change azimuth")
	}

	r.Drag(0, 10000)
	if r.Elevation() != cfg.MaxElevation {
		t.Errorf("Expected elevation clamped to %f, got %f", cfg.MaxElevation, r.Elevation())
	}
	r.Drag(0, -10000)
	if r.Elevation() != cfg.MinElevation {
		t.Errorf("Expected elevation clamped to %f, got %f", cfg.MinElevation, r.Elevation())
	}
}

// TestViewportCentreRoundTrip verifies the focus projects to the centre and the centre ray points at it
func TestViewportCentreRoundTrip(t *testing.T) {
	target := &stubTarget{pos: core.Point(0, 0, 0)}
	r := NewRig(target, DefaultConfig())
	r.Update(0)
	v := r.Viewport(80, 40)

	x, y, depth, ok := v.Project(target.pos)
	if !ok {
		t.Fatal("Expected focus to be on screen")
	}
	// Exact centre sits on a cell boundary, allow either neighbour
	if x < 39 || x > 40 || y < 19 || y > 20 {
		t.Errorf("Expected focus near cell (40,20), got (%d,%d)", x, y)
	}
	if depth <= 0 {
		t.Errorf("Expected positive depth, got %f", depth)
	}

	origin, dir, err := v.Ray(40, 20)
	if err != nil {
		t.Fatalf("Unexpected ray error: %v", err)
	}
	want := r.Focus().Sub(origin).Normalize()
	if dir.Dot(want) < 0.999 {
		t.Errorf("Expected centre ray toward focus, dot=%f", dir.Dot(want))
	}
}

// TestViewportBehindCamera verifies points behind the eye are rejected
func TestViewportBehindCamera(t *testing.T) {
	r := NewRig(&stubTarget{}, DefaultConfig())
	r.Update(0)
	v := r.Viewport(80, 40)

	behind := r.Eye().Add(r.Eye().Sub(r.Focus()))
	if _, _, _, ok := v.Project(core.PointFromVec(behind)); ok {
		t.Error("Expected point behind camera to be off screen")
	}
}

// TestViewportSingular verifies a degenerate projection surfaces ErrSingular
func TestViewportSingular(t *testing.T) {
	v := Viewport{Width: 10, Height: 10}
	if _, _, err := v.Ray(1, 1); !errors.Is(err, ErrSingular) {
		t.Errorf("Expected ErrSingular, got %v", err)
	}
}

// TestRayCasterMatchesViewportRay verifies the cached inverse casts the same rays as Viewport.Ray
func TestRayCasterMatchesViewportRay(t *testing.T) {
	r := NewRig(&stubTarget{pos: core.Point(120, 0, -80)}, DefaultConfig())
	r.Update(0)
	v := r.Viewport(80, 22)

	caster, err := v.RayCaster()
	if err != nil {
		t.Fatalf("Unexpected ray caster error: %v", err)
	}
	for _, cell := range [][2]int{{0, 0}, {79, 0}, {40, 11}, {0, 21}, {79, 21}, {13, 7}} {
		wantO, wantD, err := v.Ray(cell[0], cell[1])
		if err != nil {
			t.Fatalf("Unexpected ray error: %v", err)
		}
		gotO, gotD, ok := caster.Ray(cell[0], cell[1])
		if !ok {
			t.Fatalf("Expected ray for cell %v", cell)
		}
		if gotO.Sub(wantO).Len() > 1e-6 || gotD.Dot(wantD) < 1-1e-9 {
			t.Errorf("Expected ray %v %v for cell %v, got %v %v", wantO, wantD, cell, gotO, gotD)
		}
	}

	if _, err := (Viewport{Width: 10, Height: 10}).RayCaster(); !errors.Is(err, ErrSingular) {
		t.Errorf("Expected ErrSingular, got %v", err)
	}
}

// TestListenerRightAxis verifies the listener axis is horizontal and unit length
func TestListenerRightAxis(t *testing.T) {
	r := NewRig(&stubTarget{}, DefaultConfig())
	r.Update(0)

	_, right := r.Listener()
	if math.Abs(right.Len()-1) > 1e-9 || math.Abs(right.Y()) > 1e-9 {
		t.Errorf("Expected horizontal unit right axis, got %v", right)
	}
	if math.Abs(right.Dot(r.Focus().Sub(r.Eye()).Normalize())) > 1e-9 {
		t.Error("Expected right axis perpendicular to view direction")
	}
}
