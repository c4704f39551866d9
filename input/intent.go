package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, ESC, Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Pointer
	IntentTarget // Primary click on the ground
	IntentOrbit  // Drag with any button held
	IntentZoom   // Wheel
)

// Intent is one classified user action
type Intent struct {
	Type   IntentType
	X, Y   int     // Cell of a click
	DX, DY int     // Cell delta of a drag step
	Zoom   float64 // Wheel step, positive is closer
}

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "toggle-mute"
	case IntentResize:
		return "resize"
	case IntentTarget:
		return "target"
	case IntentOrbit:
		return "orbit"
	case IntentZoom:
		return "zoom"
	default:
		return "none"
	}
}
