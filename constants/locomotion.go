package constants

// Locomotion Command Constants
const (
	// MoveSpeed is the linear rate in world units per physics tick
	MoveSpeed = 10.0

	// FacingAlpha is the per-tick turn smoothing factor in (0,1], smaller turns slower
	FacingAlpha = 0.1

	// ArrivalThreshold is the horizontal distance treated as "arrived"
	ArrivalThreshold = 0.5
)

// Animation clip names selected from the running flag
const (
	ClipRunning = "running"
	ClipIdle    = "idle"
)
