package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityGround RenderPriority = iota
	PriorityReflection
	PriorityCharacter
	PriorityMarker
	PriorityUI
)
