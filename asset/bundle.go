package asset

import (
	"bytes"
	"fmt"
	"path"
	"unicode/utf8"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/stride/constants"
	"github.com/lixenwraith/stride/physics"
	"gopkg.in/yaml.v3"
)

// Arrow describes the target marker appearance
type Arrow struct {
	Glyphs    string  `yaml:"glyphs"`
	Color     string  `yaml:"color"`
	Emissive  string  `yaml:"emissive"`
	Bloom     bool    `yaml:"bloom"`
	Metalness float64 `yaml:"metalness"`
	Roughness float64 `yaml:"roughness"`
}

// Environment holds the scene palette and post-processing parameters
type Environment struct {
	BloomStrength  float64 `yaml:"bloom_strength"`
	BloomThreshold float64 `yaml:"bloom_threshold"`
	Sky            string  `yaml:"sky"`
	Horizon        string  `yaml:"horizon"`
	Field          string  `yaml:"field"`
	FieldLine      string  `yaml:"field_line"`
	Stands         string  `yaml:"stands"`
	Reflection     string  `yaml:"reflection"`
	Character      string  `yaml:"character"`
}

// Bundle is the fully loaded asset set handed to the scene on mount
type Bundle struct {
	Surface   physics.SurfaceSpec
	Footsteps *beep.Buffer
	Arrow     Arrow
	Env       Environment
}

// decoder parses one asset and returns the mutation that stores it in the bundle
type decoder func(data []byte) (func(*Bundle), error)

func (g *Gate) decoderFor(name string) (decoder, error) {
	switch path.Base(name) {
	case constants.AssetStadium:
		return decodeStadium, nil
	case constants.AssetArrow:
		return decodeArrow, nil
	case constants.AssetEnv:
		return decodeEnv, nil
	}
	if path.Ext(name) == ".wav" {
		return g.decodeFootsteps, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, name)
}

func decodeYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

func decodeStadium(data []byte) (func(*Bundle), error) {
	var spec physics.SurfaceSpec
	if err := decodeYAML(data, &spec); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return func(b *Bundle) { b.Surface = spec }, nil
}

func decodeArrow(data []byte) (func(*Bundle), error) {
	arrow := Arrow{
		Color:     constants.MarkerColor,
		Emissive:  constants.MarkerEmissive,
		Metalness: constants.MarkerMetalness,
		Roughness: constants.MarkerRoughness,
	}
	if err := decodeYAML(data, &arrow); err != nil {
		return nil, err
	}
	if arrow.Metalness < 0 || arrow.Metalness > 1 || arrow.Roughness < 0 || arrow.Roughness > 1 {
		return nil, fmt.Errorf("arrow metalness %.2f / roughness %.2f outside [0,1]", arrow.Metalness, arrow.Roughness)
	}
	// One glyph per keyframe segment
	want := len(constants.MarkerKeyframes) - 1
	if n := utf8.RuneCountInString(arrow.Glyphs); n != want {
		return nil, fmt.Errorf("arrow needs %d glyphs, got %d", want, n)
	}
	return func(b *Bundle) { b.Arrow = arrow }, nil
}

func decodeEnv(data []byte) (func(*Bundle), error) {
	var env Environment
	if err := decodeYAML(data, &env); err != nil {
		return nil, err
	}
	if env.BloomStrength < 0 || env.BloomThreshold < 0 || env.BloomThreshold > 1 {
		return nil, fmt.Errorf("env bloom strength %.2f / threshold %.2f out of range", env.BloomStrength, env.BloomThreshold)
	}
	return func(b *Bundle) { b.Env = env }, nil
}
