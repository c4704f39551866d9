package constants

import "testing"

// TestMarkerKeyframes verifies the spin track covers one full turn in even steps
func TestMarkerKeyframes(t *testing.T) {
	n := len(MarkerKeyframes)
	if n < 2 {
		t.Fatalf("Expected at least 2 keyframes, got %d", n)
	}
	if MarkerKeyframes[0] != 0 || MarkerKeyframes[n-1] != 360 {
		t.Errorf("Expected track from 0 to 360, got %v..%v", MarkerKeyframes[0], MarkerKeyframes[n-1])
	}
	step := MarkerKeyframes[1] - MarkerKeyframes[0]
	for i := 1; i < n; i++ {
		if d := MarkerKeyframes[i] - MarkerKeyframes[i-1]; d != step {
			t.Errorf("Expected step %v at %d, got %v", step, i, d)
		}
	}
}

// TestStatusTextWidth verifies both status labels occupy the same columns
func TestStatusTextWidth(t *testing.T) {
	if len(StatusTextIdle) != len(StatusTextRunning) {
		t.Errorf("Expected equal widths, got %d and %d", len(StatusTextIdle), len(StatusTextRunning))
	}
}
