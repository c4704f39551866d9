package constants

// System Priorities, lower values run first
const (
	// PriorityPhysics steps the body before anything reads its position
	PriorityPhysics = 100

	// PriorityCamera follows the body after it has moved this frame
	PriorityCamera = 200

	// PriorityReflector tracks the footstep source against the settled listener
	PriorityReflector = 300

	// PriorityMarker advances the marker spin
	PriorityMarker = 310
)
