package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyEntry describes what a key does
// The zero value is unbound
type KeyEntry struct {
	Intent IntentType
	Dir    float64
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	up := KeyEntry{Intent: IntentMove, Dir: 1}
	down := KeyEntry{Intent: IntentMove, Dir: -1}
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyF1:     {Intent: IntentToggleDebug},
			tcell.KeyEnter:  {Intent: IntentStart},
			tcell.KeyUp:     up,
			tcell.KeyDown:   down,
		},
		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			'm': {Intent: IntentToggleMute},
			'p': {Intent: IntentPause},
			'r': {Intent: IntentReset},
			' ': {Intent: IntentLaunch},
			'w': up,
			'k': up,
			's': down,
			'j': down,
		},
	}
}

// Lookup resolves a key event to its binding
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() != tcell.KeyRune {
		e, ok := kt.SpecialKeys[ev.Key()]
		return e, ok
	}
	r := ev.Rune()
	if e, ok := kt.Runes[r]; ok {
		return e, true
	}
	e, ok := kt.Runes[unicode.ToLower(r)]
	return e, ok
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}
