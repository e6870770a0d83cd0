package input

import (
	"maps"
	"slices"
)

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"quit":         {Intent: IntentQuit},
	"toggle_mute":  {Intent: IntentToggleMute},
	"toggle_debug": {Intent: IntentToggleDebug},
	"pause":        {Intent: IntentPause},

	"start":  {Intent: IntentStart},
	"reset":  {Intent: IntentReset},
	"launch": {Intent: IntentLaunch},

	"move_up":   {Intent: IntentMove, Dir: 1},
	"move_down": {Intent: IntentMove, Dir: -1},
}

// ActionEntry returns the binding for an action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}

// ActionNames returns all bindable action names, sorted
func ActionNames() []string {
	return slices.Sorted(maps.Keys(actionRegistry))
}
