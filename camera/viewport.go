package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/stride/core"
)

// ErrSingular is returned when the view-projection cannot be inverted
var ErrSingular = errors.New("camera: singular view projection")

// Viewport maps between world space and a grid of terminal cells
// Row 0 is the top row; mgl64 window space is bottom-up
type Viewport struct {
	View, Proj    mgl64.Mat4
	Width, Height int
}

// Project returns the cell covering p and its view depth
// ok is false when p is behind the camera or off-grid
func (v Viewport) Project(p core.WorldPoint) (x, y int, depth float64, ok bool) {
	obj := p.Vec()
	clip := v.Proj.Mul4(v.View).Mul4x1(obj.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, 0, false
	}

	win := mgl64.Project(obj, v.View, v.Proj, 0, 0, v.Width, v.Height)
	x = int(math.Floor(win.X()))
	y = int(math.Floor(float64(v.Height) - win.Y()))
	if x < 0 || x >= v.Width || y < 0 || y >= v.Height {
		return x, y, clip.W(), false
	}
	return x, y, clip.W(), true
}

// Ray returns the world-space ray through the centre of cell (x, y)
func (v Viewport) Ray(x, y int) (origin, dir mgl64.Vec3, err error) {
	wx := float64(x) + 0.5
	wy := float64(v.Height) - (float64(y) + 0.5)

	near, err := mgl64.UnProject(mgl64.Vec3{wx, wy, 0}, v.View, v.Proj, 0, 0, v.Width, v.Height)
	if err != nil {
		return origin, dir, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	far, err := mgl64.UnProject(mgl64.Vec3{wx, wy, 1}, v.View, v.Proj, 0, 0, v.Width, v.Height)
	if err != nil {
		return origin, dir, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	d := far.Sub(near)
	if d.Len() == 0 {
		return origin, dir, ErrSingular
	}
	return near, d.Normalize(), nil
}

// RayCaster casts cell rays against a view-projection inverted once
type RayCaster struct {
	inv           mgl64.Mat4
	width, height int
}

// RayCaster inverts the view-projection for repeated per-cell ray queries
func (v Viewport) RayCaster() (RayCaster, error) {
	inv := v.Proj.Mul4(v.View).Inv()
	if inv == (mgl64.Mat4{}) || v.Width <= 0 || v.Height <= 0 {
		return RayCaster{}, ErrSingular
	}
	return RayCaster{inv: inv, width: v.Width, height: v.Height}, nil
}

// Ray returns the world-space ray through the centre of cell (x, y), matching Viewport.Ray
func (c RayCaster) Ray(x, y int) (origin, dir mgl64.Vec3, ok bool) {
	nx := 2*(float64(x)+0.5)/float64(c.width) - 1
	ny := 1 - 2*(float64(y)+0.5)/float64(c.height)

	near := c.unproject(nx, ny, -1)
	d := c.unproject(nx, ny, 1).Sub(near)
	if d.Len() == 0 {
		return origin, dir, false
	}
	return near, d.Normalize(), true
}

func (c RayCaster) unproject(x, y, z float64) mgl64.Vec3 {
	p := c.inv.Mul4x1(mgl64.Vec4{x, y, z, 1})
	if p.W() == 0 {
		return p.Vec3()
	}
	return p.Vec3().Mul(1 / p.W())
}
