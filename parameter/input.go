package parameter

import "time"

// Keyboard axis
// Terminals report key presses and repeats but never releases, so a held key
// is inferred from the repeat stream
const (
	// KeyInitialHold keeps the axis engaged after a first press, covers the OS repeat delay
	KeyInitialHold = 550 * time.Millisecond

	// KeyRepeatHold keeps the axis engaged between auto-repeats
	KeyRepeatHold = 120 * time.Millisecond
)
