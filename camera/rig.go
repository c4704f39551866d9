package camera

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/stride/constants"
	"github.com/lixenwraith/stride/core"
)

// Target is what the rig follows
type Target interface {
	Position() core.WorldPoint
	Yaw() float64
}

// Config holds the rig tunables
type Config struct {
	Radius          float64
	MinRadius       float64
	MaxRadius       float64
	Azimuth         float64
	Elevation       float64
	MinElevation    float64
	MaxElevation    float64
	Damping         float64 // exponential follow rate per second, <= 0 snaps
	DragSensitivity float64 // radians per dragged cell
	FOV             float64 // vertical, degrees
	Near, Far       float64
	CellAspect      float64

	// LockTargetRotation adds the target's yaw to the orbit so the camera stays behind it
	LockTargetRotation bool
}

// DefaultConfig returns the third-person defaults with target-rotation lock disabled
func DefaultConfig() Config {
	return Config{
		Radius:          constants.CameraRadius,
		MinRadius:       constants.CameraMinRadius,
		MaxRadius:       constants.CameraMaxRadius,
		Azimuth:         constants.CameraAzimuth,
		Elevation:       constants.CameraElevation,
		MinElevation:    constants.CameraMinElevation,
		MaxElevation:    constants.CameraMaxElevation,
		Damping:         constants.CameraDamping,
		DragSensitivity: constants.CameraDragSensitivity,
		FOV:             constants.CameraFOV,
		Near:            constants.CameraNear,
		Far:             constants.CameraFar,
		CellAspect:      constants.CellAspect,
	}
}

// Rig is a damped third-person orbit camera bound to one target
// It takes no commands from locomotion; user drag owns the angle
type Rig struct {
	cfg    Config
	target Target

	azimuth   float64
	elevation float64
	radius    float64

	eye    mgl64.Vec3
	focus  mgl64.Vec3
	primed bool
}

var worldUp = mgl64.Vec3{0, 1, 0}

// NewRig creates a rig following target
func NewRig(target Target, cfg Config) *Rig {
	r := &Rig{
		cfg:       cfg,
		target:    target,
		azimuth:   cfg.Azimuth,
		elevation: cfg.Elevation,
		radius:    cfg.Radius,
	}
	r.clamp()
	return r
}

// Priority runs the rig after physics so it follows the settled body
func (r *Rig) Priority() int {
	return constants.PriorityCamera
}

// Update moves the camera toward its desired pose
func (r *Rig) Update(dt time.Duration) {
	focus, eye := r.desired()
	if !r.primed || r.cfg.Damping <= 0 {
		r.focus, r.eye, r.primed = focus, eye, true
		return
	}

	k := 1 - math.Exp(-r.cfg.Damping*dt.Seconds())
	r.focus = r.focus.Add(focus.Sub(r.focus).Mul(k))
	r.eye = r.eye.Add(eye.Sub(r.eye).Mul(k))
}

// Drag orbits by a pointer delta in cells
func (r *Rig) Drag(dx, dy int) {
	r.azimuth -= float64(dx) * r.cfg.DragSensitivity
	r.elevation += float64(dy) * r.cfg.DragSensitivity
	r.clamp()
}

// Zoom scales the orbit radius; positive delta moves closer
func (r *Rig) Zoom(delta float64) {
	r.radius -= delta
	r.clamp()
}

// Azimuth returns the user-controlled orbit angle
func (r *Rig) Azimuth() float64 {
	return r.azimuth
}

// Elevation returns the orbit angle above the horizon
func (r *Rig) Elevation() float64 {
	return r.elevation
}

// Eye returns the current camera position
func (r *Rig) Eye() mgl64.Vec3 {
	return r.eye
}

// Focus returns the current look-at point
func (r *Rig) Focus() mgl64.Vec3 {
	return r.focus
}

// Listener returns the camera position and its right-hand axis for positional audio
func (r *Rig) Listener() (pos, right mgl64.Vec3) {
	fwd := r.focus.Sub(r.eye)
	right = fwd.Cross(worldUp)
	if right.Len() == 0 {
		return r.eye, mgl64.Vec3{1, 0, 0}
	}
	return r.eye, right.Normalize()
}

// Viewport builds the projection for a width x height cell area
func (r *Rig) Viewport(width, height int) Viewport {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	aspect := float64(width) / (float64(height) * r.cfg.CellAspect)
	return Viewport{
		View:   mgl64.LookAtV(r.eye, r.focus, worldUp),
		Proj:   mgl64.Perspective(mgl64.DegToRad(r.cfg.FOV), aspect, r.cfg.Near, r.cfg.Far),
		Width:  width,
		Height: height,
	}
}

func (r *Rig) desired() (focus, eye mgl64.Vec3) {
	focus = r.target.Position().Vec()
	az := r.azimuth
	if r.cfg.LockTargetRotation {
		// Behind the target: opposite of its heading
		az += r.target.Yaw() + math.Pi
	}
	cosEl := math.Cos(r.elevation)
	offset := mgl64.Vec3{
		r.radius * cosEl * math.Sin(az),
		r.radius * math.Sin(r.elevation),
		r.radius * cosEl * math.Cos(az),
	}
	return focus, focus.Add(offset)
}

func (r *Rig) clamp() {
	r.elevation = mgl64.Clamp(r.elevation, r.cfg.MinElevation, r.cfg.MaxElevation)
	r.radius = mgl64.Clamp(r.radius, r.cfg.MinRadius, r.cfg.MaxRadius)
}
