package constants

import "math"

// Camera Follow Rig Constants
const (
	CameraRadius       = 260.0
	CameraMinRadius    = 80.0
	CameraMaxRadius    = 900.0
	CameraElevation    = 0.55 // radians above the horizon
	CameraMinElevation = 0.1
	CameraMaxElevation = 1.45
	CameraAzimuth      = math.Pi / 2

	// CameraDamping is the exponential follow rate per second
	CameraDamping = 6.0

	// CameraDragSensitivity is radians per dragged cell
	CameraDragSensitivity = 0.03

	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 60.0

	CameraNear = 1.0
	CameraFar  = 5000.0

	// CellAspect is the height/width ratio of one terminal cell
	CellAspect = 2.0
)
