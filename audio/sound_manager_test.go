package audio

import (
	"testing"
	"time"
)

// TestSoundManagerGracefulDegradation verifies operations don't panic without a device
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(testRate)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Add(testBuffer(10).Streamer(0, 10))
	sm.SetMuted(true)
	if !sm.Muted() {
		t.Error("Expected muted after SetMuted(true)")
	}
	if sm.ToggleMute() {
		t.Error("Expected toggle to unmute")
	}
	sm.Lock()
	sm.Unlock()
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies init and cleanup, tolerating missing devices
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(testRate)

	// Speaker init may fail in CI without an audio device; the game runs without audio
	if err := sm.Initialize(100 * time.Millisecond); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if !sm.Initialized() {
		t.Error("Expected initialized after successful Initialize")
	}
	if err := sm.Initialize(100 * time.Millisecond); err != nil {
		t.Errorf("Second initialization should be a no-op, got error: %v", err)
	}
	sm.Cleanup()
	if sm.Initialized() {
		t.Error("Expected not initialized after Cleanup")
	}
}
