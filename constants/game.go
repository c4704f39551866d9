package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// PhysicsTickRate is the fixed physics step frequency in Hz
	PhysicsTickRate = 60

	// MaxTicksPerFrame bounds catch-up work after a stall
	MaxTicksPerFrame = 8
)

// Scene Environment
const (
	// BloomStrength and BloomThreshold are handed to the scene container, opaque to locomotion
	BloomStrength  = 1.0
	BloomThreshold = 0.5

	// ReflectorY is the height of the reflective ground plane
	ReflectorY = -39.38

	// CharacterSpawnY is the initial character height before the first surface snap
	CharacterSpawnY = 44.58

	// CharacterHalfHeight lifts the body origin above the surface it stands on
	CharacterHalfHeight = 4.0
)
