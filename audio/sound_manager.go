package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// SoundManager owns the speaker and the master mixer
// Every operation is safe before Initialize and after a failed Initialize; audio is optional
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
}

// NewSoundManager creates a sound manager producing at rate
func NewSoundManager(rate beep.SampleRate) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		rate:   rate,
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// Initialize opens the speaker and starts the master mix
func (sm *SoundManager) Initialize(bufferDuration time.Duration) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(bufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup silences and clears the mix
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; clearing the mixer stops all output
	sm.initialized = false
}

// Initialized reports whether a device is attached
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SampleRate returns the output sample rate
func (sm *SoundManager) SampleRate() beep.SampleRate {
	return sm.rate
}

// Add mixes s into the master output
func (sm *SoundManager) Add(s beep.Streamer) {
	sm.Lock()
	defer sm.Unlock()
	sm.mixer.Add(s)
}

// SetMuted silences or restores the master output
func (sm *SoundManager) SetMuted(muted bool) {
	sm.Lock()
	defer sm.Unlock()
	sm.master.Silent = muted
}

// ToggleMute flips the master mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.Lock()
	defer sm.Unlock()
	sm.master.Silent = !sm.master.Silent
	return sm.master.Silent
}

// Muted reports the master mute state
func (sm *SoundManager) Muted() bool {
	sm.Lock()
	defer sm.Unlock()
	return sm.master.Silent
}

// Lock guards streamer mutation against the speaker goroutine
func (sm *SoundManager) Lock() {
	if sm.Initialized() {
		speaker.Lock()
	}
}

// Unlock releases the lock taken by Lock
func (sm *SoundManager) Unlock() {
	if sm.Initialized() {
		speaker.Unlock()
	}
}
