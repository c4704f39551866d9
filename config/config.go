package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/docker/go-units"
	"github.com/lixenwraith/stride/camera"
	"github.com/lixenwraith/stride/constants"
	"github.com/lixenwraith/stride/locomotion"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime configuration, every key defaulted from constants
type Config struct {
	Locomotion Locomotion `yaml:"locomotion"`
	Marker     Marker     `yaml:"marker"`
	Audio      Audio      `yaml:"audio"`
	Camera     Camera     `yaml:"camera"`
	Scene      Scene      `yaml:"scene"`
	Assets     Assets     `yaml:"assets"`
	Logging    Logging    `yaml:"logging"`
}

type Locomotion struct {
	MoveSpeed        float64 `yaml:"move_speed"`
	FacingAlpha      float64 `yaml:"facing_alpha"`
	ArrivalThreshold float64 `yaml:"arrival_threshold"`
	TickRate         int     `yaml:"tick_rate"`
}

type Marker struct {
	VerticalOffset float64       `yaml:"vertical_offset"`
	SpinPeriod     time.Duration `yaml:"spin_period"`
}

type Audio struct {
	Enabled      bool    `yaml:"enabled"`
	PlaybackRate float64 `yaml:"playback_rate"`
	Volume       float64 `yaml:"volume"`
	SampleRate   int     `yaml:"sample_rate"`
}

type Camera struct {
	Radius             float64 `yaml:"radius"`
	Elevation          float64 `yaml:"elevation"`
	Damping            float64 `yaml:"damping"`
	DragSensitivity    float64 `yaml:"drag_sensitivity"`
	FOV                float64 `yaml:"fov"`
	LockTargetRotation bool    `yaml:"lock_target_rotation"`
}

type Scene struct {
	BloomStrength  float64 `yaml:"bloom_strength"`
	BloomThreshold float64 `yaml:"bloom_threshold"`
	ReflectorY     float64 `yaml:"reflector_y"`
	SpawnY         float64 `yaml:"spawn_y"`
}

type Assets struct {
	Dir      string `yaml:"dir"`
	SizeHint string `yaml:"size_hint"`
}

type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Locomotion: Locomotion{
			MoveSpeed:        constants.MoveSpeed,
			FacingAlpha:      constants.FacingAlpha,
			ArrivalThreshold: constants.ArrivalThreshold,
			TickRate:         constants.PhysicsTickRate,
		},
		Marker: Marker{
			VerticalOffset: constants.MarkerVerticalOffset,
			SpinPeriod:     constants.MarkerSpinPeriod,
		},
		Audio: Audio{
			Enabled:      true,
			PlaybackRate: constants.FootstepPlaybackRate,
			Volume:       constants.FootstepVolume,
			SampleRate:   constants.AudioSampleRate,
		},
		Camera: Camera{
			Radius:          constants.CameraRadius,
			Elevation:       constants.CameraElevation,
			Damping:         constants.CameraDamping,
			DragSensitivity: constants.CameraDragSensitivity,
			FOV:             constants.CameraFOV,
		},
		Scene: Scene{
			BloomStrength:  constants.BloomStrength,
			BloomThreshold: constants.BloomThreshold,
			ReflectorY:     constants.ReflectorY,
			SpawnY:         constants.CharacterSpawnY,
		},
		Assets: Assets{
			SizeHint: constants.AssetSizeHint,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes yaml over the defaults, rejecting unknown keys
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every tunable the scene would misbehave on
func (c Config) Validate() error {
	switch {
	case c.Locomotion.MoveSpeed <= 0:
		return fmt.Errorf("%w: locomotion.move_speed must be positive, got %g", ErrInvalid, c.Locomotion.MoveSpeed)
	case c.Locomotion.FacingAlpha <= 0 || c.Locomotion.FacingAlpha > 1:
		return fmt.Errorf("%w: locomotion.facing_alpha must be in (0,1], got %g", ErrInvalid, c.Locomotion.FacingAlpha)
	case c.Locomotion.ArrivalThreshold < 0:
		return fmt.Errorf("%w: locomotion.arrival_threshold must not be negative, got %g", ErrInvalid, c.Locomotion.ArrivalThreshold)
	case c.Locomotion.TickRate <= 0:
		return fmt.Errorf("%w: locomotion.tick_rate must be positive, got %d", ErrInvalid, c.Locomotion.TickRate)
	case c.Marker.SpinPeriod <= 0:
		return fmt.Errorf("%w: marker.spin_period must be positive, got %v", ErrInvalid, c.Marker.SpinPeriod)
	case c.Audio.PlaybackRate <= 0:
		return fmt.Errorf("%w: audio.playback_rate must be positive, got %g", ErrInvalid, c.Audio.PlaybackRate)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate must be positive, got %d", ErrInvalid, c.Audio.SampleRate)
	case c.Camera.Radius < constants.CameraMinRadius || c.Camera.Radius > constants.CameraMaxRadius:
		return fmt.Errorf("%w: camera.radius must be in [%g,%g], got %g", ErrInvalid,
			constants.CameraMinRadius, constants.CameraMaxRadius, c.Camera.Radius)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera.fov must be in (0,180), got %g", ErrInvalid, c.Camera.FOV)
	case c.Scene.BloomThreshold < 0 || c.Scene.BloomThreshold > 1:
		return fmt.Errorf("%w: scene.bloom_threshold must be in [0,1], got %g", ErrInvalid, c.Scene.BloomThreshold)
	}
	if _, err := units.FromHumanSize(c.Assets.SizeHint); err != nil {
		return fmt.Errorf("%w: assets.size_hint %q: %v", ErrInvalid, c.Assets.SizeHint, err)
	}
	return nil
}

// LocomotionConfig maps the locomotion section onto controller tunables
func (c Config) LocomotionConfig() locomotion.Config {
	return locomotion.Config{
		Speed: c.Locomotion.MoveSpeed,
		Alpha: c.Locomotion.FacingAlpha,
	}
}

// CameraConfig maps the camera section over the rig defaults
func (c Config) CameraConfig() camera.Config {
	cfg := camera.DefaultConfig()
	cfg.Radius = c.Camera.Radius
	cfg.Elevation = c.Camera.Elevation
	cfg.Damping = c.Camera.Damping
	cfg.DragSensitivity = c.Camera.DragSensitivity
	cfg.FOV = c.Camera.FOV
	cfg.LockTargetRotation = c.Camera.LockTargetRotation
	return cfg
}
