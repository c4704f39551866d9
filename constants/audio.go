package constants

import "time"

// Footstep Audio Constants
const (
	// FootstepPlaybackRate is the fixed speed multiplier of the footstep loop
	FootstepPlaybackRate = 2.5

	// FootstepVolume is the base gain in beep's exponential volume units (0 = unchanged)
	FootstepVolume = 0.0

	// FootstepFalloff is the distance at which positional attenuation reaches one volume step
	FootstepFalloff = 200.0

	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// ResampleQuality is the interpolation quality passed to beep resamplers
	ResampleQuality = 4
)
