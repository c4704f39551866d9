package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/stride/asset"
)

// HUD colours
var (
	RgbHUDBackground = tcell.NewRGBColor(26, 27, 38)
	RgbHUDText       = tcell.NewRGBColor(200, 200, 210)
	RgbHUDHelp       = tcell.NewRGBColor(120, 120, 140)
	RgbStatusIdle    = tcell.NewRGBColor(60, 90, 160)
	RgbStatusRunning = tcell.NewRGBColor(200, 120, 0)
	RgbLoadingBar    = tcell.NewRGBColor(255, 78, 78)
)

// Palette is the resolved scene colour set
type Palette struct {
	Sky        tcell.Color
	Horizon    tcell.Color
	Field      tcell.Color
	FieldLine  tcell.Color
	Stands     tcell.Color
	Reflection tcell.Color
	Character  tcell.Color
	Marker     tcell.Color

	BloomStrength  float64
	BloomThreshold float64
}

// NewPalette resolves the environment and arrow colours; the marker colour is pre-bloomed
// Metalness scales the emissive contribution and roughness damps the bloom boost
func NewPalette(env asset.Environment, arrow asset.Arrow) (Palette, error) {
	var p Palette
	named := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"sky", env.Sky, &p.Sky},
		{"horizon", env.Horizon, &p.Horizon},
		{"field", env.Field, &p.Field},
		{"field_line", env.FieldLine, &p.FieldLine},
		{"stands", env.Stands, &p.Stands},
		{"reflection", env.Reflection, &p.Reflection},
		{"character", env.Character, &p.Character},
	}
	for _, n := range named {
		c, err := parseColor(n.name, n.hex)
		if err != nil {
			return Palette{}, err
		}
		*n.dst = c
	}

	p.BloomStrength = env.BloomStrength
	p.BloomThreshold = env.BloomThreshold

	marker, err := parseColor("arrow color", arrow.Color)
	if err != nil {
		return Palette{}, err
	}
	p.Marker = marker
	if arrow.Bloom {
		emissive, err := parseColor("arrow emissive", arrow.Emissive)
		if err != nil {
			return Palette{}, err
		}
		emissive = Scale(emissive, 0.5+0.5*arrow.Metalness)
		strength := p.BloomStrength * (1 - 0.5*arrow.Roughness)
		p.Marker = Bloom(Add(marker, emissive), strength, p.BloomThreshold)
	}
	return p, nil
}

func parseColor(name, hex string) (tcell.Color, error) {
	c := tcell.GetColor(hex)
	if c == tcell.ColorDefault || !c.Valid() {
		return tcell.ColorDefault, fmt.Errorf("%s colour %q is not a colour", name, hex)
	}
	return c.TrueColor(), nil
}

// clamp converts float to a colour channel
func clamp(v float64) int32 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return int32(v)
}

// Scale multiplies every channel by factor
func Scale(c tcell.Color, factor float64) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(clamp(float64(r)*factor), clamp(float64(g)*factor), clamp(float64(b)*factor))
}

// Add sums two colours channel-wise
func Add(c, d tcell.Color) tcell.Color {
	r1, g1, b1 := c.RGB()
	r2, g2, b2 := d.RGB()
	return tcell.NewRGBColor(clamp(float64(r1+r2)), clamp(float64(g1+g2)), clamp(float64(b1+b2)))
}

// Blend mixes src over c by alpha in [0,1]
func Blend(c, src tcell.Color, alpha float64) tcell.Color {
	r1, g1, b1 := c.RGB()
	r2, g2, b2 := src.RGB()
	mix := func(a, b int32) int32 {
		return clamp(float64(a) + (float64(b)-float64(a))*alpha)
	}
	return tcell.NewRGBColor(mix(r1, r2), mix(g1, g2), mix(b1, b2))
}

// Bloom brightens colours whose luminance exceeds threshold, proportionally to strength
func Bloom(c tcell.Color, strength, threshold float64) tcell.Color {
	r, g, b := c.RGB()
	lum := (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255.0
	if lum <= threshold || strength <= 0 {
		return c
	}
	return Scale(c, 1+strength*(lum-threshold))
}
