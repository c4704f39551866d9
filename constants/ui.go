package constants

import "time"

// Target Marker Constants
const (
	// MarkerVerticalOffset raises the marker above the clicked ground point
	MarkerVerticalOffset = 50.0

	// MarkerSpinPeriod is one full turn of the marker around the vertical axis
	MarkerSpinPeriod = 2 * time.Second

	// Arrow material defaults, used where arrow.yaml leaves a field out
	MarkerColor     = "#ff4e4e"
	MarkerEmissive  = "#223056"
	MarkerMetalness = 1.0
	MarkerRoughness = 0.4
)

// MarkerKeyframes is the rotationY track of the marker in degrees
var MarkerKeyframes = []float64{0, 45, 90, 135, 180, 225, 270, 315, 360}

// Pointer Constants
const (
	// DragThreshold is the cell distance a pressed pointer may travel and still count as a click
	DragThreshold = 1

	// ZoomStep is the orbit radius change per wheel notch
	ZoomStep = 20.0
)

// HUD Layout Constants
const (
	HUDRows = 2

	StatusTextIdle    = " IDLE    "
	StatusTextRunning = " RUNNING "
)
