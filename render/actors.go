package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/stride/constants"
	"github.com/lixenwraith/stride/core"
)

// BodyView is the character as seen by the renderers
type BodyView interface {
	Position() core.WorldPoint
	Yaw() float64
	Animation() string
}

// MarkerView is the target marker as seen by the renderer
type MarkerView interface {
	Position() (core.WorldPoint, bool)
	Frame() int
}

// facingGlyphs are screen-space headings starting at east, clockwise
var facingGlyphs = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// drawOver sets a glyph while keeping the background already drawn beneath it
func drawOver(screen tcell.Screen, x, y int, r rune, fg tcell.Color, bold bool) {
	_, _, st, _ := screen.GetContent(x, y)
	_, bg, _ := st.Decompose()
	screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg).Bold(bold))
}

func inScene(ctx RenderContext, x, y int) bool {
	return x >= 0 && x < ctx.ScreenWidth && y >= 0 && y < ctx.SceneHeight()
}

// facingGlyph projects the body heading onto the screen and picks the nearest arrow
func facingGlyph(ctx RenderContext, pos core.WorldPoint, yaw float64) rune {
	ahead := core.Point(pos.X+math.Sin(yaw)*20, pos.Y, pos.Z+math.Cos(yaw)*20)
	x0, y0, _, ok0 := ctx.Viewport.Project(pos)
	x1, y1, _, ok1 := ctx.Viewport.Project(ahead)
	if !ok0 || !ok1 || (x0 == x1 && y0 == y1) {
		return '●'
	}
	// Rows are twice as tall as columns
	angle := math.Atan2(float64(y1-y0)*constants.CellAspect, float64(x1-x0))
	i := int(math.Round(angle/(math.Pi/4))) % len(facingGlyphs)
	if i < 0 {
		i += len(facingGlyphs)
	}
	return facingGlyphs[i]
}

// CharacterRenderer draws the body as a head over a heading arrow
type CharacterRenderer struct {
	body BodyView
}

// NewCharacterRenderer creates the character renderer
func NewCharacterRenderer(body BodyView) *CharacterRenderer {
	return &CharacterRenderer{body: body}
}

// Render draws the character, bold and stepping while the running clip plays
func (r *CharacterRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	pos := r.body.Position()
	x, y, _, ok := ctx.Viewport.Project(pos)
	if !ok {
		return
	}
	running := r.body.Animation() == constants.ClipRunning

	head := 'o'
	if running && (ctx.Frame/8)%2 == 1 {
		head = 'O'
	}
	if inScene(ctx, x, y-1) {
		drawOver(screen, x, y-1, head, ctx.Palette.Character, running)
	}
	if inScene(ctx, x, y) {
		drawOver(screen, x, y, facingGlyph(ctx, pos, r.body.Yaw()), ctx.Palette.Character, running)
	}
}

// ReflectionRenderer draws a dim copy of the body mirrored through the reflector plane
type ReflectionRenderer struct {
	body   BodyView
	planeY float64
}

// NewReflectionRenderer creates a reflection about the horizontal plane y = planeY
func NewReflectionRenderer(body BodyView, planeY float64) *ReflectionRenderer {
	return &ReflectionRenderer{body: body, planeY: planeY}
}

// Mirror returns p reflected through the plane
func (r *ReflectionRenderer) Mirror(p core.WorldPoint) core.WorldPoint {
	return core.Point(p.X, 2*r.planeY-p.Y, p.Z)
}

// Render draws the mirrored body only where it falls inside the scene
func (r *ReflectionRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	x, y, _, ok := ctx.Viewport.Project(r.Mirror(r.body.Position()))
	if !ok || !inScene(ctx, x, y) {
		return
	}
	drawOver(screen, x, y, '░', ctx.Palette.Reflection, false)
}

// MarkerRenderer draws the spinning arrow above the target
type MarkerRenderer struct {
	marker MarkerView
	glyphs []rune
}

// NewMarkerRenderer creates the marker renderer with one glyph per spin segment
func NewMarkerRenderer(marker MarkerView, glyphs string) *MarkerRenderer {
	return &MarkerRenderer{marker: marker, glyphs: []rune(glyphs)}
}

// IsVisible implements VisibilityToggle
func (r *MarkerRenderer) IsVisible() bool {
	_, ok := r.marker.Position()
	return ok
}

// Render draws the current spin glyph
func (r *MarkerRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	pos, ok := r.marker.Position()
	if !ok || len(r.glyphs) == 0 {
		return
	}
	x, y, _, ok := ctx.Viewport.Project(pos)
	if !ok || !inScene(ctx, x, y) {
		return
	}
	glyph := r.glyphs[r.marker.Frame()%len(r.glyphs)]
	drawOver(screen, x, y, glyph, ctx.Palette.Marker, true)
}
