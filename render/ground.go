package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/stride/physics"
)

// Field markings in world units
const (
	fieldLineSpacing = 100.0
	fieldLineWidth   = 3.0
	centreCircle     = 90.0
)

type groundKey struct {
	view, proj    mgl64.Mat4
	width, height int
}

// GroundRenderer shades every scene cell by casting it against the surface
// The shaded grid is reused while the camera and screen are unchanged
type GroundRenderer struct {
	surface *physics.Surface
	key     groundKey
	cells   []tcell.Color
	valid   bool
}

// NewGroundRenderer creates a ground renderer for surface
func NewGroundRenderer(surface *physics.Surface) *GroundRenderer {
	return &GroundRenderer{surface: surface}
}

// Render fills the scene area background
func (g *GroundRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	w, h := ctx.ScreenWidth, ctx.SceneHeight()
	key := groundKey{view: ctx.Viewport.View, proj: ctx.Viewport.Proj, width: w, height: h}
	if !g.valid || key != g.key {
		g.shade(ctx, w, h)
		g.key = key
		g.valid = true
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(g.cells[y*w+x]))
		}
	}
}

func (g *GroundRenderer) shade(ctx RenderContext, w, h int) {
	if cap(g.cells) < w*h {
		g.cells = make([]tcell.Color, w*h)
	}
	g.cells = g.cells[:w*h]

	spec := g.surface.Spec()
	caster, err := ctx.Viewport.RayCaster()
	for y := 0; y < h; y++ {
		sky := Blend(ctx.Palette.Sky, ctx.Palette.Horizon, float64(y)/float64(max(h-1, 1)))
		for x := 0; x < w; x++ {
			c := sky
			if err == nil {
				if origin, dir, ok := caster.Ray(x, y); ok {
					if p, ok := g.surface.Raycast(origin, dir); ok {
						c = groundColor(ctx.Palette, spec, p.X, p.Y, p.Z)
					}
				}
			}
			g.cells[y*w+x] = c
		}
	}
}

func groundColor(pal Palette, spec physics.SurfaceSpec, x, y, z float64) tcell.Color {
	r := math.Hypot(x, z)
	if r > spec.FieldRadius {
		rise := 0.0
		if spec.StandHeight != spec.FieldHeight {
			rise = (y - spec.FieldHeight) / (spec.StandHeight - spec.FieldHeight)
		}
		return Scale(pal.Stands, 0.6+0.4*math.Max(0, math.Min(1, rise)))
	}
	if onLine(x) || math.Abs(r-centreCircle) < fieldLineWidth/2 {
		return pal.FieldLine
	}
	// Mown stripes
	if int(math.Floor(z/fieldLineSpacing))%2 == 0 {
		return pal.Field
	}
	return Scale(pal.Field, 0.85)
}

func onLine(v float64) bool {
	m := math.Mod(math.Abs(v), fieldLineSpacing)
	return m < fieldLineWidth/2 || fieldLineSpacing-m < fieldLineWidth/2
}
