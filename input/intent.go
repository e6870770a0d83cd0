package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // Ctrl+Q, Ctrl+C, q
	IntentToggleMute  // m
	IntentToggleDebug // F1
	IntentPause       // p
	IntentResize      // Terminal resize event

	// Battle commands
	IntentStart  // Enter
	IntentReset  // r
	IntentLaunch // Space

	// Paddle control
	IntentMove    // Up/Down, w/s, k/j; Dir carries the axis direction
	IntentPointer // Mouse motion; Row carries the screen row
)

var intentNames = map[IntentType]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentToggleMute:  "toggle_mute",
	IntentToggleDebug: "toggle_debug",
	IntentPause:       "pause",
	IntentResize:      "resize",
	IntentStart:       "start",
	IntentReset:       "reset",
	IntentLaunch:      "launch",
	IntentMove:        "move",
	IntentPointer:     "pointer",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent is one parsed input action
type Intent struct {
	Type IntentType
	Dir  float64 // IntentMove: +1 up, -1 down
	Row  int     // IntentPointer: screen row under the mouse
}
